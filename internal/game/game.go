package game

import (
	"fmt"
	"image/color"
	"math"

	"pacman/internal/entities"
	"pacman/internal/ghostai"
	tm "pacman/internal/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	tileSize                   = 16
	updatesPerSecond           = 60
	playerSpeedPixelsPerSecond = 720.0 // 480.0 * 1.5
	playerSpeedPixelsPerUpdate = playerSpeedPixelsPerSecond / updatesPerSecond
	ghostSpeedPixelsPerSecond  = 630.0 // 420.0 * 1.5
	ghostSpeedPixelsPerUpdate  = ghostSpeedPixelsPerSecond / updatesPerSecond
	frightenedDurationUpdates  = 120 // 120 ticks = 2 seconds at 60 UPS
	alignmentThreshold         = 1.0

	pelletPoints      = 10
	powerPelletPoints = 50
	baseGhostPoints   = 200
	maxGhostPoints    = 1600
)

// ghostHome is where eaten ghosts return to be revived: the ghost house interior.
var ghostHome = ghostai.TileCoord{Row: 14, Col: 13}

type Game struct {
	tileMap             *tm.TileMap
	player              *entities.Player
	ghosts              []*entities.Ghost
	agents              []*ghostai.Agent
	audio               *AudioManager
	score               int
	highScore           int
	highScoreName       string
	playerName          string
	enteringName        bool
	showingLeaderboard  bool
	lives               int
	fullscreen          bool
	paused              bool
	quit                bool
	scale               float64
	tickCounter         int
	frightenedUntilTick int
	ghostEatCombo       int
}

func New() *Game {
	m := tm.NewDefaultMap(tileSize)
	// Start player on a free corridor near bottom center (x=14, y=26 in default maze)
	startX := float64(14*tileSize + tileSize/2)
	startY := float64(26*tileSize + tileSize/2)
	p := &entities.Player{X: startX, Y: startY}
	g := &Game{tileMap: m, player: p, lives: 3}
	g.audio = NewAudioManager("")

	// Load persisted high score (with name if present)
	if rec := LoadHighScoreRecord(); rec != nil {
		g.highScore = rec.Score
		g.highScoreName = rec.Name
	} else {
		g.highScore = 0
	}
	g.enteringName = true

	// Spawn 4 ghosts near the center (ghost house area) at nearest corridor tiles,
	// one per personality: red chases, pink patrols, orange is the scaredy-cat,
	// cyan runs the hybrid ambush.
	board := boardAdapter{m: m}
	personalities := []entities.Personality{
		entities.PersonalityDirect,
		entities.PersonalityPatrol,
		entities.PersonalityThreshold,
		entities.PersonalityHybrid,
	}
	spawnTargets := [][2]int{{13, 14}, {14, 14}, {13, 15}, {14, 15}}
	for i, t := range spawnTargets {
		ox, oy := g.nearestCorridorTile(t[0], t[1])
		gh := &entities.Ghost{
			X:           float64(ox*tileSize + tileSize/2),
			Y:           float64(oy*tileSize + tileSize/2),
			Personality: personalities[i],
		}
		g.ghosts = append(g.ghosts, gh)
		g.agents = append(g.agents, ghostai.NewAgent(board, gh, ghostai.StrategyFor(gh.Personality, board)))
	}

	// Compute initial scale to fit within ~75% of the display area
	nativeW := m.Width * tileSize
	nativeH := m.Height * tileSize
	sw, sh := ebiten.ScreenSizeInFullscreen()
	fit := 0.75
	maxW := int(float64(sw) * fit)
	maxH := int(float64(sh) * fit)
	scaleW := float64(maxW) / float64(nativeW)
	scaleH := float64(maxH) / float64(nativeH)
	g.scale = math.Min(scaleW, scaleH)
	if g.scale <= 0 || math.IsNaN(g.scale) || math.IsInf(g.scale, 0) {
		g.scale = 1.0
	}
	return g
}

func (g *Game) ScreenWidth() int {
	return int(float64(g.tileMap.Width*tileSize) * g.scale)
}

func (g *Game) ScreenHeight() int {
	return int(float64(g.tileMap.Height*tileSize) * g.scale)
}

func (g *Game) Update() error {
	// Advance global tick counter first so timers are robust
	g.tickCounter++
	g.handleInput()
	if g.quit {
		return ebiten.Termination
	}

	if g.showingLeaderboard {
		return nil
	}

	if g.enteringName {
		return nil
	}

	if g.frightenedUntilTick != 0 && g.tickCounter >= g.frightenedUntilTick {
		g.frightenedUntilTick = 0
		g.ghostEatCombo = 0
	}
	if g.paused {
		return nil
	}
	g.updatePlayerMovement()
	g.handlePelletCollision()
	g.updateGhosts()
	g.checkPlayerGhostCollision()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Clear background (black)
	screen.Fill(color.Black)

	// Use an offscreen image at native resolution then scale up
	nativeW := g.tileMap.Width * tileSize
	nativeH := g.tileMap.Height * tileSize
	off := ebiten.NewImage(nativeW, nativeH)

	// Draw map
	g.tileMap.Draw(off)

	// Draw player
	vector.DrawFilledCircle(off, float32(g.player.X), float32(g.player.Y), float32(tileSize/2-2), color.RGBA{R: 255, G: 221, B: 0, A: 255}, true)

	// Draw ghosts (simple circles, colored by personality)
	ghostColors := map[entities.Personality]color.RGBA{
		entities.PersonalityDirect:    {R: 255, G: 0, B: 0, A: 255},     // red
		entities.PersonalityPatrol:    {R: 255, G: 128, B: 255, A: 255}, // pink
		entities.PersonalityThreshold: {R: 255, G: 128, B: 0, A: 255},   // orange
		entities.PersonalityHybrid:    {R: 0, G: 191, B: 255, A: 255},   // cyan
	}
	for _, gh := range g.ghosts {
		if gh.State == entities.GhostEaten {
			// Eyes only: a small white dot homing back to the house
			vector.DrawFilledCircle(off, float32(gh.X), float32(gh.Y), float32(tileSize/4), color.White, true)
			continue
		}
		c := ghostColors[gh.Personality]
		if g.isFrightened() {
			c = color.RGBA{R: 0, G: 0, B: 255, A: 255}
		}
		vector.DrawFilledCircle(off, float32(gh.X), float32(gh.Y), float32(tileSize/2-2), c, true)
	}

	// HUD: Score, High Score (with name) & Lives
	hiLabel := "High"
	if g.highScoreName != "" {
		hiLabel = fmt.Sprintf("High(%s)", g.highScoreName)
	}
	name := g.playerName
	if name == "" {
		name = "Player"
	}
	text.Draw(off, fmt.Sprintf("%s  Score: %d  %s: %d  Lives: %d  FPS: %0.0f", name, g.score, hiLabel, g.highScore, g.lives, ebiten.ActualFPS()), basicfont.Face7x13, 4, 12, color.White)

	// Show frightened timer if active (bottom right corner)
	if g.isFrightened() {
		remainingTicks := g.frightenedUntilTick - g.tickCounter
		remainingSeconds := float64(remainingTicks) / float64(updatesPerSecond)
		timerText := fmt.Sprintf("Frightened: %.1fs", remainingSeconds)
		textWidth := len(timerText) * 7 // basicfont.Face7x13 is roughly 7 pixels wide per character
		text.Draw(off, timerText, basicfont.Face7x13, nativeW-textWidth-4, nativeH-4, color.RGBA{R: 0, G: 255, B: 255, A: 255})
	}

	// If awaiting name, draw prompt centered
	if g.enteringName {
		prompt := "Enter name: " + g.playerName + "_"
		pw := len(prompt) * 7
		text.Draw(off, prompt, basicfont.Face7x13, (nativeW-pw)/2, nativeH/2, color.White)
	}

	// If showing leaderboard, draw it centered
	if g.showingLeaderboard {
		list := LoadLeaderboard()
		title := "High Scores"
		tw := len(title) * 7
		y := nativeH/2 - 40
		text.Draw(off, title, basicfont.Face7x13, (nativeW-tw)/2, y, color.RGBA{R: 255, G: 215, B: 0, A: 255})
		y += 14
		// Limit to top 10 sorted by score desc
		// simple selection; list likely small
		for i := 0; i < len(list) && i < 10; i++ {
			// find max in remaining
			maxIdx := i
			for j := i + 1; j < len(list); j++ {
				if list[j].Score > list[maxIdx].Score {
					maxIdx = j
				}
			}
			list[i], list[maxIdx] = list[maxIdx], list[i]
			line := fmt.Sprintf("%2d. %-12s  %6d", i+1, list[i].Name, list[i].Score)
			lw := len(line) * 7
			text.Draw(off, line, basicfont.Face7x13, (nativeW-lw)/2, y, color.White)
			y += 14
		}
		hint := "Press Q to exit"
		hw := len(hint) * 7
		text.Draw(off, hint, basicfont.Face7x13, (nativeW-hw)/2, nativeH-8, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	}

	// Scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(off, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}

func (g *Game) handleInput() {
	// Name entry handling takes precedence
	if g.enteringName {
		// Collect typed characters
		var chars []rune
		chars = ebiten.AppendInputChars(chars)
		for _, r := range chars {
			if len([]rune(g.playerName)) >= 12 {
				break
			}
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == ' ' || r == '_' || r == '-' {
				g.playerName += string(r)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			rs := []rune(g.playerName)
			if len(rs) > 0 {
				g.playerName = string(rs[:len(rs)-1])
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
			if len([]rune(g.playerName)) > 0 {
				g.enteringName = false
			}
		}
		// Allow quitting/fullscreen even while entering name
		if inpututil.IsKeyJustPressed(ebiten.KeyF) {
			g.fullscreen = !g.fullscreen
			ebiten.SetFullscreen(g.fullscreen)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			// Save if necessary with name
			if g.score > g.highScore {
				g.highScore = g.score
				_ = SaveHighScoreRecord(&HighScoreRecord{Name: g.playerName, Score: g.highScore})
			}
			g.quit = true
		}
		return
	}
	// Queue desired direction from input
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.player.DesiredDir = entities.DirUp
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.player.DesiredDir = entities.DirDown
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.player.DesiredDir = entities.DirLeft
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.player.DesiredDir = entities.DirRight
	}

	// Fullscreen toggle with 'F'
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}

	// Pause toggle with Space
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	// Quit with 'Q'
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		// Persist high score before quitting
		if g.score > g.highScore {
			g.highScore = g.score
			_ = SaveHighScoreRecord(&HighScoreRecord{Name: g.playerName, Score: g.highScore})
		}
		// If leaderboard showing already, exit; otherwise show it first
		if g.showingLeaderboard {
			g.quit = true
		} else {
			g.showingLeaderboard = true
		}
	}

	// Show leaderboard with 'S'
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.showingLeaderboard = !g.showingLeaderboard
	}
}
