// Package audio 提供 Ebitengine 未内置的音频格式解码
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// AUStream decodes Sun/NeXT audio (.au) tracks into the format an Ebitengine
// audio context plays: 16-bit little-endian signed stereo at the context's
// sample rate. Mono input is duplicated to both channels.
type AUStream struct {
	data       []byte // 16-bit LE stereo PCM at the target rate
	sampleRate int    // target sample rate in Hz
	offset     int64  // current read position
}

// AU file header structure (24 bytes minimum)
type auHeader struct {
	Magic      uint32 // 0x2e736e64 (".snd")
	DataOffset uint32 // Offset to audio data (typically 24)
	DataSize   uint32 // Size of audio data in bytes (0xFFFFFFFF if unknown)
	Encoding   uint32 // Audio encoding format
	SampleRate uint32 // Sample rate in Hz
	Channels   uint32 // Number of interleaved channels
}

const (
	auMagic         = 0x2e736e64 // ".snd" in big-endian
	auEncodingULaw  = 1          // 8-bit μ-law
	auEncodingPCM16 = 3          // 16-bit linear PCM, big-endian
)

// μ-law decompression table (converts μ-law byte to 16-bit PCM)
var mulawTable = [256]int16{
	-32124, -31100, -30076, -29052, -28028, -27004, -25980, -24956,
	-23932, -22908, -21884, -20860, -19836, -18812, -17788, -16764,
	-15996, -15484, -14972, -14460, -13948, -13436, -12924, -12412,
	-11900, -11388, -10876, -10364, -9852, -9340, -8828, -8316,
	-7932, -7676, -7420, -7164, -6908, -6652, -6396, -6140,
	-5884, -5628, -5372, -5116, -4860, -4604, -4348, -4092,
	-3900, -3772, -3644, -3516, -3388, -3260, -3132, -3004,
	-2876, -2748, -2620, -2492, -2364, -2236, -2108, -1980,
	-1884, -1820, -1756, -1692, -1628, -1564, -1500, -1436,
	-1372, -1308, -1244, -1180, -1116, -1052, -988, -924,
	-876, -844, -812, -780, -748, -716, -684, -652,
	-620, -588, -556, -524, -492, -460, -428, -396,
	-372, -356, -340, -324, -308, -292, -276, -260,
	-244, -228, -212, -196, -180, -164, -148, -132,
	-120, -112, -104, -96, -88, -80, -72, -64,
	-56, -48, -40, -32, -24, -16, -8, 0,
	32124, 31100, 30076, 29052, 28028, 27004, 25980, 24956,
	23932, 22908, 21884, 20860, 19836, 18812, 17788, 16764,
	15996, 15484, 14972, 14460, 13948, 13436, 12924, 12412,
	11900, 11388, 10876, 10364, 9852, 9340, 8828, 8316,
	7932, 7676, 7420, 7164, 6908, 6652, 6396, 6140,
	5884, 5628, 5372, 5116, 4860, 4604, 4348, 4092,
	3900, 3772, 3644, 3516, 3388, 3260, 3132, 3004,
	2876, 2748, 2620, 2492, 2364, 2236, 2108, 1980,
	1884, 1820, 1756, 1692, 1628, 1564, 1500, 1436,
	1372, 1308, 1244, 1180, 1116, 1052, 988, 924,
	876, 844, 812, 780, 748, 716, 684, 652,
	620, 588, 556, 524, 492, 460, 428, 396,
	372, 356, 340, 324, 308, 292, 276, 260,
	244, 228, 212, 196, 180, 164, 148, 132,
	120, 112, 104, 96, 88, 80, 72, 64,
	56, 48, 40, 32, 24, 16, 8, 0,
}

// DecodeAU decodes a .au track and converts it to stereo 16-bit PCM at
// targetRate so it can be handed to audio.Context.NewPlayer.
//
// Supported encodings: 8-bit μ-law (1) and 16-bit linear PCM (3), mono or stereo.
func DecodeAU(r io.Reader, targetRate int) (*AUStream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read AU file: %w", err)
	}

	if len(data) < 24 {
		return nil, fmt.Errorf("AU file too short: %d bytes (minimum 24)", len(data))
	}
	if targetRate <= 0 {
		return nil, fmt.Errorf("invalid target sample rate: %d", targetRate)
	}

	var header auHeader
	if err := binary.Read(bytes.NewReader(data), binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read AU header: %w", err)
	}

	if header.Magic != auMagic {
		return nil, fmt.Errorf("invalid AU magic number: 0x%08x (expected 0x%08x)", header.Magic, auMagic)
	}
	if header.Channels < 1 || header.Channels > 2 {
		return nil, fmt.Errorf("unsupported channel count: %d (only 1-2 supported)", header.Channels)
	}
	if header.SampleRate == 0 {
		return nil, fmt.Errorf("invalid AU sample rate: 0")
	}

	dataOffset := int(header.DataOffset)
	if dataOffset < 24 || dataOffset >= len(data) {
		return nil, fmt.Errorf("invalid data offset: %d (file size: %d)", dataOffset, len(data))
	}
	payload := data[dataOffset:]
	if header.DataSize != 0xFFFFFFFF && int(header.DataSize) < len(payload) {
		payload = payload[:header.DataSize]
	}

	samples, err := decodeSamples(payload, header.Encoding)
	if err != nil {
		return nil, err
	}

	channels := int(header.Channels)
	frames := len(samples) / channels
	left := make([]int16, frames)
	right := make([]int16, frames)
	for i := 0; i < frames; i++ {
		left[i] = samples[i*channels]
		right[i] = samples[i*channels+channels-1]
	}

	left = resample(left, int(header.SampleRate), targetRate)
	right = resample(right, int(header.SampleRate), targetRate)

	pcm := make([]byte, len(left)*4)
	for i := range left {
		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(left[i]))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(right[i]))
	}

	return &AUStream{data: pcm, sampleRate: targetRate}, nil
}

// decodeSamples 将 AU 负载解码为交错的 16 位样本
func decodeSamples(payload []byte, encoding uint32) ([]int16, error) {
	switch encoding {
	case auEncodingULaw:
		out := make([]int16, len(payload))
		for i, b := range payload {
			out[i] = mulawTable[b]
		}
		return out, nil
	case auEncodingPCM16:
		out := make([]int16, len(payload)/2)
		for i := range out {
			out[i] = int16(binary.BigEndian.Uint16(payload[i*2:]))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported AU encoding: %d (supported: μ-law [1], PCM16 [3])", encoding)
	}
}

// resample 线性插值重采样
func resample(in []int16, from, to int) []int16 {
	if from == to || len(in) == 0 {
		return in
	}
	n := int(int64(len(in)) * int64(to) / int64(from))
	if n == 0 {
		return nil
	}
	out := make([]int16, n)
	step := float64(from) / float64(to)
	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		if j >= len(in)-1 {
			out[i] = in[len(in)-1]
			continue
		}
		frac := pos - float64(j)
		out[i] = int16(float64(in[j])*(1-frac) + float64(in[j+1])*frac)
	}
	return out
}

// Read reads decoded PCM data into p.
func (s *AUStream) Read(p []byte) (int, error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read.
func (s *AUStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	s.offset = newOffset
	return newOffset, nil
}

// Length returns the total length of the decoded stream in bytes.
func (s *AUStream) Length() int64 {
	return int64(len(s.data))
}

// SampleRate returns the sample rate of the decoded stream in Hz.
func (s *AUStream) SampleRate() int {
	return s.sampleRate
}
