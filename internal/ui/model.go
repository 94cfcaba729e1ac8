package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/palemoky/set-game/internal/game"
	"github.com/palemoky/set-game/internal/game/card"
	"github.com/palemoky/set-game/internal/sound"
	"github.com/palemoky/set-game/internal/storage"
)

const (
	scoreboardSize = 10
	storageTimeout = 2 * time.Second
)

// Scoreboard is the part of storage.Scoreboard the UI uses.
type Scoreboard interface {
	RecordResult(ctx context.Context, res storage.Result) error
	Top(ctx context.Context, limit int) ([]storage.LeaderboardEntry, error)
}

// Options configures a Model. Zero values are usable.
type Options struct {
	Player         string
	MessageTimeout time.Duration
	Scoreboard     Scoreboard // nil disables result recording
	Sound          sound.Player
	Logger         *zap.Logger
}

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeError
)

// notice is the transient message under the board.
type notice struct {
	text string
	kind noticeKind
	seq  int
}

type screen int

const (
	screenBoard screen = iota
	screenRules
)

// Model is the bubbletea model driving one game session.
type Model struct {
	game *game.Game
	opts Options

	cursor   int
	notice   notice
	hint     card.Card // 第三张牌提示，随提示消息一起消失
	screen   screen
	recorded bool

	keys keyMap
	help help.Model

	width  int
	height int
}

// --- messages ---

type clearNoticeMsg struct{ seq int }

type resultRecordedMsg struct {
	gameID string
	err    error
}

type scoreboardMsg struct {
	entries []storage.LeaderboardEntry
	err     error
}

// NewModel wraps g in a UI model.
func NewModel(g *game.Game, opts Options) *Model {
	if opts.Sound == nil {
		opts.Sound = sound.Mute{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Player == "" {
		opts.Player = "player"
	}
	return &Model{
		game: g,
		opts: opts,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Game() *game.Game { return m.game }
func (m *Model) Cursor() int      { return m.cursor }
func (m *Model) Notice() string   { return m.notice.text }
