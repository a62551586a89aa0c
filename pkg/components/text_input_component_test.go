package components

import (
	"strings"
	"testing"
)

func TestWishBufferAppendAndBackspace(t *testing.T) {
	var b WishBuffer
	b.Append([]rune("Happy Bday!")...)
	if b.String() != "Happy Bday!" {
		t.Fatalf("unexpected buffer %q", b.String())
	}

	b.Backspace()
	if b.String() != "Happy Bday" {
		t.Errorf("Backspace should remove last rune, got %q", b.String())
	}

	b.Clear()
	if b.Len() != 0 || !b.IsBlank() {
		t.Errorf("Clear should empty the buffer, got %q", b.String())
	}

	// 空缓冲区退格不应 panic
	b.Backspace()
}

func TestWishBufferMaxLength(t *testing.T) {
	var b WishBuffer
	added := b.Append([]rune(strings.Repeat("x", 100))...)
	if added != WishMaxLength || b.Len() != WishMaxLength {
		t.Errorf("expected buffer capped at %d, added=%d len=%d", WishMaxLength, added, b.Len())
	}
	if b.Append('y') != 0 {
		t.Error("append beyond cap should be a no-op")
	}
}

func TestWishBufferRejectsControlRunes(t *testing.T) {
	var b WishBuffer
	b.Append('a', '\n', '\t', '\b', 'é', '🎂')
	if b.String() != "aé🎂" {
		t.Errorf("expected only printable runes, got %q", b.String())
	}
}

func TestWishBufferIsBlank(t *testing.T) {
	var b WishBuffer
	b.Append([]rune("   ")...)
	if !b.IsBlank() {
		t.Error("whitespace-only buffer should be blank")
	}
	b.Append('!')
	if b.IsBlank() {
		t.Error("buffer with text should not be blank")
	}
}
