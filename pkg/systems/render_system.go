package systems

import (
	"image/color"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/bdaygreet/pkg/components"
	"github.com/decker502/bdaygreet/pkg/config"
	"github.com/decker502/bdaygreet/pkg/game"
	"github.com/decker502/bdaygreet/pkg/utils"
)

// Rainbow 标题逐字颜色
var Rainbow = [7]color.NRGBA{
	{R: 255, G: 80, B: 80, A: 255},
	{R: 255, G: 150, B: 80, A: 255},
	{R: 255, G: 220, B: 100, A: 255},
	{R: 120, G: 220, B: 120, A: 255},
	{R: 100, G: 180, B: 255, A: 255},
	{R: 160, G: 120, B: 255, A: 255},
	{R: 240, G: 120, B: 200, A: 255},
}

// 字号
const (
	countdownFontSize = 115.0
	birthdayFontSize  = 56.0
	wishFontSize      = 34.0
	closingFontSize   = 25.0
	signOffFontSize   = 28.0
	dobFontSize       = 22.0
	buttonFontSize    = 19.0
	ellipseSegments   = 24
)

var (
	white          = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	balloonString  = color.NRGBA{R: 230, G: 220, B: 210, A: 140}
	closingColor   = color.NRGBA{R: 255, G: 220, B: 240, A: 255}
	signOffColor   = color.NRGBA{R: 255, G: 200, B: 230, A: 255}
	cakeShadow     = color.NRGBA{R: 40, G: 20, B: 35, A: 255}
	candleColor    = color.NRGBA{R: 255, G: 255, B: 230, A: 255}
	buttonStroke   = color.NRGBA{R: 255, G: 244, B: 255, A: 40}
	backdropShadow = color.NRGBA{A: config.BackdropFadeAlpha}
)

// RenderSystem draws the whole greeting from the current state of the other systems.
//
// Draw never mutates state. Draw order:
// backdrop → stage content → UI buttons → active modal; the start overlay
// replaces everything above the backdrop until the first click.
type RenderSystem struct {
	rm       *game.ResourceManager
	greeting *config.GreetingConfig

	sequencer *StageSequencer
	particles *ParticleSystem
	ring      *RingAnimator
	backdrop  *GlyphBackdrop
	cake      *CakeAnimator
	modals    *ModalController
	buttons   []components.UIButton

	whitePixel   *ebiten.Image
	vertices     []ebiten.Vertex
	indices      []uint16
	points       []float32
	closingLines []string
	missingFaces map[float64]bool
}

// RenderSources 渲染所需的各个系统
type RenderSources struct {
	Sequencer *StageSequencer
	Particles *ParticleSystem
	Ring      *RingAnimator
	Backdrop  *GlyphBackdrop
	Cake      *CakeAnimator
	Modals    *ModalController
	Buttons   []components.UIButton
}

// NewRenderSystem creates the renderer.
func NewRenderSystem(rm *game.ResourceManager, greeting *config.GreetingConfig, src RenderSources) *RenderSystem {
	whitePixel := ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)

	return &RenderSystem{
		rm:           rm,
		greeting:     greeting,
		sequencer:    src.Sequencer,
		particles:    src.Particles,
		ring:         src.Ring,
		backdrop:     src.Backdrop,
		cake:         src.Cake,
		modals:       src.Modals,
		buttons:      src.Buttons,
		whitePixel:   whitePixel,
		missingFaces: make(map[float64]bool),
	}
}

// Draw renders one frame.
func (rs *RenderSystem) Draw(screen *ebiten.Image, now time.Duration) {
	screen.Fill(color.Black)
	rs.drawBackdrop(screen)

	if !rs.sequencer.Started() {
		rs.drawStartOverlay(screen)
		return
	}

	stage := rs.sequencer.Stage()
	switch {
	case stage == components.StageCountdown:
		rs.drawCountdown(screen, now)
		rs.drawBalloons(screen)
	case stage.ShowsHeart():
		rs.drawHeart(screen)
		rs.drawRisingHearts(screen)
		rs.drawRing(screen)
		rs.drawConfetti(screen)
		rs.drawBalloons(screen)
		rs.drawCake(screen)
		rs.drawStageMessage(screen, stage, now)
	}

	if rs.sequencer.ShowButtons() {
		rs.drawButtons(screen)
	}

	switch rs.modals.Active() {
	case components.ModalSongChoice:
		rs.drawSongModal(screen)
	case components.ModalExit:
		rs.drawExitModal(screen)
	case components.ModalWishEntry:
		rs.drawWishModal(screen)
	}
}

// --- Backdrop ---

func (rs *RenderSystem) drawBackdrop(screen *ebiten.Image) {
	for _, col := range rs.backdrop.Columns() {
		for _, cell := range col.Cells {
			size := col.FontSize
			if cell.Head {
				size += 2
			}
			rs.drawText(screen, string(cell.Char), size, col.X, cell.Y, cell.Color)
		}
	}
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, backdropShadow, false)
}

// --- Countdown ---

func (rs *RenderSystem) drawCountdown(screen *ebiten.Image, now time.Duration) {
	prog := rs.sequencer.CountdownProgress(now)
	if n := rs.sequencer.Countdown(); n > 0 {
		face := rs.face(countdownFontSize)
		if face != nil {
			scale := 1 + 0.16*prog
			op := &text.DrawOptions{}
			op.PrimaryAlign = text.AlignCenter
			op.SecondaryAlign = text.AlignCenter
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(config.CanvasCenterX, config.CanvasCenterY)
			op.ColorScale.ScaleWithColor(utils.WithAlpha(white, 252*(1-prog*prog)))
			text.Draw(screen, strconv.Itoa(n), face, op)
		}
	}

	rs.particles.Sparks.ForEach(func(s *components.Spark) {
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), 7, utils.WithAlpha(s.Color, s.Alpha), true)
	})
}

// --- Heart, ring, particles ---

func (rs *RenderSystem) drawHeart(screen *ebiten.Image) {
	for _, b := range rs.ring.Blobs() {
		rs.fillEllipse(screen, b.X, b.Y, b.W, b.H, b.Color)
	}
}

func (rs *RenderSystem) drawRisingHearts(screen *ebiten.Image) {
	rs.particles.Hearts.ForEach(func(h *components.RisingHeart) {
		c := utils.WithAlpha(h.Color, h.Alpha)
		s := h.Size
		rs.fillEllipse(screen, h.X-s/2, h.Y-s/4, s, s, c)
		rs.fillEllipse(screen, h.X+s/2, h.Y-s/4, s, s, c)
		rs.fillTriangle(screen, h.X-s, h.Y, h.X+s, h.Y, h.X, h.Y+s*1.14, c)
	})
}

func (rs *RenderSystem) drawRing(screen *ebiten.Image) {
	for _, g := range rs.ring.Glows() {
		s := g.Size
		rs.fillEllipse(screen, g.X-s*0.5, g.Y-s*0.41, s*1.08, s*1.03, g.Color)
		rs.fillEllipse(screen, g.X+s*0.5, g.Y-s*0.41, s*1.07, s*1.03, g.Color)
		rs.fillTriangle(screen, g.X-s, g.Y, g.X+s, g.Y, g.X, g.Y+s*1.13, g.Color)
	}
}

func (rs *RenderSystem) drawConfetti(screen *ebiten.Image) {
	frame := rs.particles.Frame()
	rs.particles.Confetti.ForEach(func(c *components.ConfettiFlake) {
		ox := c.X + math.Sin(c.Sway+frame*0.034)*8
		angle := math.Sin(c.Sway+frame*0.04) * 0.28
		sin, cos := math.Sincos(angle)
		rs.points = rs.points[:0]
		for _, corner := range [4][2]float64{{0, 0}, {c.Size, 0}, {c.Size, c.Size}, {0, c.Size}} {
			x := corner[0]*cos - corner[1]*sin
			y := corner[0]*sin + corner[1]*cos
			rs.points = append(rs.points, float32(ox+x), float32(c.Y+y))
		}
		rs.fillConvex(screen, rs.points, c.Color)
	})
}

func (rs *RenderSystem) drawBalloons(screen *ebiten.Image) {
	rs.particles.Balloons.ForEach(func(b *components.Balloon) {
		sway := b.Sway()
		vector.StrokeLine(screen, float32(b.X), float32(b.Y), float32(b.X+sway), float32(b.Y-29), 2, balloonString, true)
		rs.fillEllipse(screen, b.X+sway, b.Y-39, 34, 44, b.Color)
	})
}

// --- Cake ---

func (rs *RenderSystem) drawCake(screen *ebiten.Image) {
	st := rs.cake.State()
	cx, cy := st.CenterX, st.CenterY

	for i, layer := range CakeLayerColors {
		ly := cy - 12 + float64(i)*CakeLayerStep
		rs.drawPanel(screen, utils.PanelStyle{W: int(CakeWidth - 14), H: 12, Radius: 8, Fill: cakeShadow}, cx-CakeWidth/2+7, ly+6)
		rs.drawPanel(screen, utils.PanelStyle{W: int(CakeWidth - 20), H: 12, Radius: 8, Fill: layer}, cx-CakeWidth/2+10, ly)
	}

	for _, sp := range st.Sprinkles {
		vector.DrawFilledCircle(screen, float32(sp.X), float32(sp.Y), 2.5, sp.Color, true)
	}

	rs.drawPanel(screen, utils.PanelStyle{W: 16, H: 28, Radius: 6, Fill: candleColor}, cx-8, cy-42)

	f := st.Flicker
	flame := utils.NRGBA(255, 220+26*f, 130, 255)
	rs.fillEllipse(screen, cx, cy-44-8*f, 16, 24+11*f, flame)
}

// --- Messages ---

func (rs *RenderSystem) drawStageMessage(screen *ebiten.Image, stage components.Stage, now time.Duration) {
	fade := rs.sequencer.MessageFade(now)
	switch stage {
	case components.StageBirthdayMessage:
		y := config.BirthdayMessageY + fade.OffsetY
		rs.drawRainbow(screen, rs.greeting.BirthdayMessage(), birthdayFontSize, y, 255*fade.Alpha)
		if rs.greeting.DOB != "" {
			rs.drawText(screen, "Date of Birth: "+rs.greeting.DOB, dobFontSize,
				config.CanvasCenterX, y+52, utils.WithAlpha(closingColor, 255*fade.Alpha))
		}
	case components.StageWishMessage:
		rs.drawRainbow(screen, rs.greeting.Wish, wishFontSize, config.WishMessageY+fade.OffsetY, 248*fade.Alpha)
	case components.StageClosing:
		rs.drawClosing(screen)
	}
}

// drawRainbow 逐字彩虹色，整行水平居中
func (rs *RenderSystem) drawRainbow(screen *ebiten.Image, msg string, size, y, alpha float64) {
	face := rs.face(size)
	if face == nil || alpha <= 0 {
		return
	}
	chars := []rune(msg)
	total := 0.0
	for _, r := range chars {
		total += text.Advance(string(r), face)
	}
	x := config.CanvasCenterX - total/2
	for i, r := range chars {
		s := string(r)
		w := text.Advance(s, face)
		rs.drawText(screen, s, size, x+w/2, y, utils.WithAlpha(Rainbow[i%len(Rainbow)], alpha))
		x += w
	}
}

func (rs *RenderSystem) drawClosing(screen *ebiten.Image) {
	if rs.closingLines == nil {
		face := rs.face(closingFontSize)
		if face == nil {
			return
		}
		rs.closingLines = utils.WrapText(rs.greeting.ClosingMessage(), config.ClosingWrapWidth, func(s string) float64 {
			return text.Advance(s, face)
		})
	}

	y := config.ClosingMessageY
	for i, line := range rs.closingLines {
		rs.drawText(screen, line, closingFontSize, config.CanvasCenterX, y+float64(i)*30, closingColor)
	}
	signOffY := y + float64(len(rs.closingLines))*31 + 8
	rs.drawText(screen, rs.greeting.Closing.SignOff, signOffFontSize, config.CanvasCenterX, signOffY, signOffColor)
}

// --- UI ---

func (rs *RenderSystem) drawButtons(screen *ebiten.Image) {
	for _, btn := range rs.buttons {
		rs.drawPanel(screen, ButtonPanelStyle(btn), btn.Rect.X, btn.Rect.Y)
	}
}

// ButtonPanelStyle 按钮外观
func ButtonPanelStyle(btn components.UIButton) utils.PanelStyle {
	return utils.PanelStyle{
		W:           int(btn.Rect.W),
		H:           int(btn.Rect.H),
		Radius:      config.ButtonCornerRadius,
		Fill:        btn.Color,
		Stroke:      buttonStroke,
		StrokeWidth: 1,
		Label:       btn.Label,
		LabelColor:  white,
		LabelSize:   buttonFontSize,
	}
}

func (rs *RenderSystem) drawStartOverlay(screen *ebiten.Image) {
	cx, cy := config.CanvasCenterX, config.CanvasCenterY
	rs.fillScreen(screen, color.NRGBA{A: 205})
	rs.drawPanel(screen, utils.PanelStyle{
		W: 405, H: 146, Radius: 30,
		Fill:        color.NRGBA{R: 255, G: 246, B: 252, A: 255},
		Stroke:      color.NRGBA{R: 180, G: 100, B: 255, A: 90},
		StrokeWidth: 2,
	}, cx-200, cy-80)
	rs.drawText(screen, "Click to Start the Magic!", 33, cx, cy-16, color.NRGBA{R: 90, G: 15, B: 70, A: 255})
	rs.drawText(screen, "Music & Animation will begin", 22, cx, cy+29, color.NRGBA{R: 133, G: 128, B: 180, A: 255})
}

func (rs *RenderSystem) drawSongModal(screen *ebiten.Image) {
	cx, cy := config.CanvasCenterX, config.CanvasCenterY
	panel := ModalPanelRect(components.ModalSongChoice)
	rs.fillScreen(screen, color.NRGBA{A: 182})
	rs.drawPanel(screen, utils.PanelStyle{
		W: int(panel.W), H: int(panel.H), Radius: 30,
		Fill:        color.NRGBA{R: 255, G: 249, B: 254, A: 255},
		Stroke:      color.NRGBA{R: 200, G: 140, B: 255, A: 90},
		StrokeWidth: 3,
	}, panel.X, panel.Y)
	rs.drawText(screen, "Choose Birthday Song", 34, cx, cy-122, color.NRGBA{R: 40, G: 20, B: 45, A: 255})

	for i, row := range rs.modals.SongRows() {
		rs.drawPanel(screen, utils.PanelStyle{
			W: int(row.W), H: int(row.H), Radius: 16,
			Fill:        rs.greeting.SongColor(i),
			Stroke:      color.NRGBA{R: 180, G: 130, B: 180, A: 100},
			StrokeWidth: 2,
			Label:       rs.greeting.Songs[i].Name,
			LabelColor:  color.NRGBA{R: 65, G: 20, B: 60, A: 255},
			LabelSize:   24,
		}, row.X, row.Y)
	}
	rs.drawText(screen, "ESC to close", 16, cx, cy+139, color.NRGBA{R: 80, G: 60, B: 130, A: 80})
}

func (rs *RenderSystem) drawExitModal(screen *ebiten.Image) {
	cx, cy := config.CanvasCenterX, config.CanvasCenterY
	panel := ModalPanelRect(components.ModalExit)
	rs.fillScreen(screen, color.NRGBA{R: 30, B: 45, A: 224})
	rs.drawPanel(screen, utils.PanelStyle{
		W: int(panel.W), H: int(panel.H), Radius: 34,
		Fill:        white,
		Stroke:      color.NRGBA{R: 200, G: 130, B: 220, A: 100},
		StrokeWidth: 2,
	}, panel.X, panel.Y)
	rs.drawText(screen, rs.modals.ExitMessage(), 22, cx, cy, color.NRGBA{R: 75, G: 30, B: 80, A: 255})
}

func (rs *RenderSystem) drawWishModal(screen *ebiten.Image) {
	cx, cy := config.CanvasCenterX, config.CanvasCenterY
	panel := ModalPanelRect(components.ModalWishEntry)
	rs.fillScreen(screen, color.NRGBA{R: 220, G: 210, B: 245, A: 238})
	rs.drawPanel(screen, utils.PanelStyle{
		W: int(panel.W), H: int(panel.H), Radius: 24,
		Fill:        color.NRGBA{R: 70, G: 20, B: 30, A: 220},
		Stroke:      color.NRGBA{R: 170, G: 120, B: 210, A: 85},
		StrokeWidth: 3,
	}, panel.X, panel.Y)
	rs.drawText(screen, "Type your birthday wish below! (ENTER to send!)", 25, cx, cy-44, color.NRGBA{R: 55, G: 27, B: 50, A: 255})

	box := utils.CenteredRect(cx, cy+32, 260, 48)
	rs.drawPanel(screen, utils.PanelStyle{
		W: int(box.W), H: int(box.H), Radius: 13,
		Fill:        color.NRGBA{R: 240, G: 250, B: 220, A: 255},
		Stroke:      color.NRGBA{R: 160, G: 150, B: 205, A: 80},
		StrokeWidth: 1,
	}, box.X, box.Y)
	wish := rs.modals.WishText()
	if wish == "" {
		wish = " "
	}
	rs.drawText(screen, wish, 22, cx, cy+33, color.NRGBA{R: 40, G: 20, B: 55, A: 255})
	rs.drawText(screen, "(Press ESC to cancel)", 15, cx, cy+78, color.NRGBA{R: 90, G: 27, B: 55, A: 255})
}

// --- Primitives ---

func (rs *RenderSystem) face(size float64) *text.GoTextFace {
	face, err := rs.rm.FontFace(size)
	if err != nil {
		if !rs.missingFaces[size] {
			rs.missingFaces[size] = true
			log.Printf("[RenderSystem] Warning: no font face for size %.0f: %v", size, err)
		}
		return nil
	}
	return face
}

// drawText 以 (x, y) 为中心绘制文字，支持多行
func (rs *RenderSystem) drawText(screen *ebiten.Image, s string, size, x, y float64, clr color.NRGBA) {
	if clr.A == 0 {
		return
	}
	face := rs.face(size)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = size * 1.2
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func (rs *RenderSystem) drawPanel(screen *ebiten.Image, style utils.PanelStyle, x, y float64) {
	img, err := rs.rm.Panel(style)
	if err != nil {
		log.Printf("[RenderSystem] Warning: %v", err)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func (rs *RenderSystem) fillScreen(screen *ebiten.Image, clr color.NRGBA) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, clr, false)
}

// fillEllipse 以 (cx, cy) 为中心、w×h 为直径绘制实心椭圆
func (rs *RenderSystem) fillEllipse(screen *ebiten.Image, cx, cy, w, h float64, clr color.NRGBA) {
	rs.points = rs.points[:0]
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		rs.points = append(rs.points, float32(cx+math.Cos(a)*w/2), float32(cy+math.Sin(a)*h/2))
	}
	rs.fillConvex(screen, rs.points, clr)
}

func (rs *RenderSystem) fillTriangle(screen *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, clr color.NRGBA) {
	rs.points = append(rs.points[:0],
		float32(x0), float32(y0),
		float32(x1), float32(y1),
		float32(x2), float32(y2),
	)
	rs.fillConvex(screen, rs.points, clr)
}

// fillConvex 以扇形三角化填充凸多边形，points 为 x,y 交替排列
func (rs *RenderSystem) fillConvex(screen *ebiten.Image, points []float32, clr color.NRGBA) {
	n := len(points) / 2
	if n < 3 || clr.A == 0 {
		return
	}
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255

	rs.vertices = rs.vertices[:0]
	for i := 0; i < n; i++ {
		rs.vertices = append(rs.vertices, ebiten.Vertex{
			DstX: points[2*i], DstY: points[2*i+1],
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	rs.indices = rs.indices[:0]
	for i := 1; i < n-1; i++ {
		rs.indices = append(rs.indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(rs.vertices, rs.indices, rs.whitePixel, op)
}
