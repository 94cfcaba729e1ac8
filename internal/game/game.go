package game

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/palemoky/set-game/internal/game/board"
	"github.com/palemoky/set-game/internal/game/card"
	"github.com/palemoky/set-game/internal/game/tutorial"
)

// Option 配置 Game
type Option func(*Game)

// WithRand 每局开始时调用 newRand 获取随机源，nil 表示随机种子
func WithRand(newRand func() *rand.Rand) Option {
	return func(g *Game) { g.newRand = newRand }
}

// WithSeed 使用固定种子，第 n 局使用 seed+n，便于复现
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		round := uint64(0)
		g.newRand = func() *rand.Rand {
			r := card.NewSeededRand(seed + round)
			round++
			return r
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithLayout 设置开局牌数和每行牌数
func WithLayout(initialSize, rowWidth int) Option {
	return func(g *Game) {
		g.initialSize = initialSize
		g.rowWidth = rowWidth
	}
}

func WithHooks(h board.Hooks) Option {
	return func(g *Game) { g.hooks = h }
}

// Game 一局游戏：一副牌、一张桌面和得分
type Game struct {
	id        string
	deck      *card.Deck
	board     *board.Board
	score     int
	startedAt time.Time

	newRand     func() *rand.Rand
	initialSize int
	rowWidth    int
	hooks       board.Hooks
	logger      *zap.Logger
}

// New 开始一局新游戏，桌面已发好开局的牌
func New(opts ...Option) *Game {
	g := &Game{
		initialSize: board.DefaultInitialSize,
		rowWidth:    board.DefaultRowWidth,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Restart()
	return g
}

// Restart 丢弃当前的牌堆和桌面，重新开局并清零得分
func (g *Game) Restart() {
	var rng *rand.Rand
	if g.newRand != nil {
		rng = g.newRand()
	}

	g.id = uuid.New().String()
	g.deck = card.NewDeck(rng)
	g.board = board.New(g.deck,
		board.WithInitialSize(g.initialSize),
		board.WithRowWidth(g.rowWidth),
		board.WithHooks(g.hooks),
	)
	g.board.FillInitial()
	g.score = 0
	g.startedAt = time.Now()

	g.logger.Info("game started",
		zap.String("game_id", g.id),
		zap.Int("board", g.board.Len()),
		zap.Int("cards_left", g.deck.Len()),
	)
}

// RecordSetFound 得分加一，返回新的得分
func (g *Game) RecordSetFound() int {
	g.score++
	g.logger.Info("set found",
		zap.String("game_id", g.id),
		zap.Int("score", g.score),
		zap.Int("cards_left", g.deck.Len()),
	)
	return g.score
}

func (g *Game) ID() string             { return g.id }
func (g *Game) Score() int             { return g.score }
func (g *Game) Deck() *card.Deck       { return g.deck }
func (g *Game) Board() *board.Board    { return g.board }
func (g *Game) StartedAt() time.Time   { return g.startedAt }
func (g *Game) SetHooks(h board.Hooks) { g.hooks = h; g.board.SetHooks(h) }

// ThirdCard 补全两张牌所需的第三张牌
func (g *Game) ThirdCard(a, b card.Card) card.Card {
	return tutorial.ThirdCard(a, b)
}

// ActiveSets 桌面上当前所有的 Set
func (g *Game) ActiveSets() []tutorial.Triple {
	return tutorial.BoardSets(g.board)
}

// Over 牌堆已空且桌面上再无 Set
func (g *Game) Over() bool {
	return g.deck.Empty() && len(g.ActiveSets()) == 0
}

// Summary 一局游戏的结果摘要
type Summary struct {
	GameID    string
	Score     int
	CardsLeft int
	Duration  time.Duration
	Finished  bool
}

// Summary 返回当前对局的摘要
func (g *Game) Summary() Summary {
	return Summary{
		GameID:    g.id,
		Score:     g.score,
		CardsLeft: g.deck.Len() + g.board.Len(),
		Duration:  time.Since(g.startedAt),
		Finished:  g.Over(),
	}
}
