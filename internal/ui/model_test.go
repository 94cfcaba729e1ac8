package ui

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/set-game/internal/game"
	"github.com/palemoky/set-game/internal/game/card"
	"github.com/palemoky/set-game/internal/game/tutorial"
	"github.com/palemoky/set-game/internal/sound"
	"github.com/palemoky/set-game/internal/storage"
	"github.com/palemoky/set-game/internal/testutil"
	"github.com/palemoky/set-game/internal/ui/common"
	"github.com/palemoky/set-game/internal/ui/view"
)

func newTestModel(t *testing.T, sb Scoreboard) (*Model, *testutil.RecordingSound) {
	t.Helper()
	snd := &testutil.RecordingSound{}
	m := NewModel(game.New(game.WithSeed(7)), Options{
		Player:         "alice",
		MessageTimeout: time.Millisecond,
		Scoreboard:     sb,
		Sound:          snd,
	})
	return m, snd
}

func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func indexOf(t *testing.T, m *Model, c card.Card) int {
	t.Helper()
	i := slices.IndexFunc(m.game.Board().Cards(), c.Same)
	require.GreaterOrEqual(t, i, 0, "card %s not on board", c)
	return i
}

func selectCards(t *testing.T, m *Model, cards ...card.Card) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, c := range cards {
		m.cursor = indexOf(t, m, c)
		cmd = press(m, "enter")
	}
	return cmd
}

// firstSet adds rows until the board holds a set.
func firstSet(t *testing.T, m *Model) tutorial.Triple {
	t.Helper()
	for {
		if sets := m.game.ActiveSets(); len(sets) > 0 {
			return sets[0]
		}
		require.Positive(t, m.game.Board().AddRow(), "no set and no cards left")
	}
}

// drain runs cmd and any batched commands, collecting their messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestModel_ValidSet(t *testing.T) {
	m, snd := newTestModel(t, nil)
	set := firstSet(t, m)
	before := m.game.Board().Len()

	cmd := selectCards(t, m, set[:]...)

	assert.Equal(t, 1, m.game.Score())
	assert.Equal(t, "This is a set!", m.Notice())
	assert.Equal(t, 0, m.game.Board().SelectedCount())
	assert.Equal(t, before, m.game.Board().Len(), "three removed, one row added")
	for _, c := range set {
		assert.False(t, m.game.Board().Contains(c))
	}
	assert.Contains(t, snd.Played, sound.CueSetFound)
	assert.NotNil(t, cmd)
}

func TestModel_InvalidSet(t *testing.T) {
	m, snd := newTestModel(t, nil)
	cards := m.game.Board().Cards()
	third := tutorial.ThirdCard(cards[0], cards[1])

	var odd card.Card
	for _, c := range cards[2:] {
		if c.Key() != third.Key() {
			odd = c
			break
		}
	}
	require.False(t, odd.IsZero())

	selectCards(t, m, cards[0], cards[1], odd)

	assert.True(t, strings.HasPrefix(m.Notice(), "Not a set!"))
	assert.Equal(t, 0, m.game.Score())
	assert.Equal(t, 0, m.game.Board().SelectedCount())
	assert.Len(t, m.game.Board().Cards(), len(cards))
	assert.Equal(t, []string{sound.CueNotSet}, snd.Played)
}

func TestModel_ToggleDeselects(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "enter")
	assert.Equal(t, 1, m.game.Board().SelectedCount())
	press(m, "enter")
	assert.Equal(t, 0, m.game.Board().SelectedCount())
}

func TestModel_ThirdCardHint(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "t")
	assert.Equal(t, "Select exactly two cards to see the third.", m.Notice())

	cards := m.game.Board().Cards()
	selectCards(t, m, cards[0], cards[1])
	press(m, "t")

	third := tutorial.ThirdCard(cards[0], cards[1])
	assert.Equal(t, "The third card to complete this Set is: "+third.Describe()+".", m.Notice())
	assert.Equal(t, third.Key(), m.hint.Key())
	assert.Contains(t, m.boardView(), view.RenderHintCard(third))

	m.Update(clearNoticeMsg{seq: m.notice.seq})
	assert.True(t, m.hint.IsZero())
}

func TestModel_PossibleSets(t *testing.T) {
	m, _ := newTestModel(t, nil)

	cmd := press(m, "p")
	assert.Nil(t, cmd, "possible sets notice stays until replaced")
	assert.True(t, strings.HasPrefix(m.Notice(), common.CountSets(len(m.game.ActiveSets()))))
}

func TestModel_AddRow(t *testing.T) {
	m, snd := newTestModel(t, nil)

	press(m, "r")
	assert.Equal(t, 15, m.game.Board().Len())
	assert.Equal(t, "Added 3 cards.", m.Notice())
	assert.Equal(t, []string{sound.CueDeal}, snd.Played)

	for m.game.Deck().Len() > 0 {
		press(m, "r")
	}
	press(m, "r")
	assert.Equal(t, "The deck is empty.", m.Notice())
}

func TestModel_CursorMovement(t *testing.T) {
	m, _ := newTestModel(t, nil)

	steps := []struct {
		key  string
		want int
	}{
		{"down", 1},
		{"down", 2},
		{"down", 2},
		{"right", 5},
		{"left", 2},
		{"up", 1},
		{"up", 0},
		{"up", 0},
		{"left", 0},
		{"l", 3},
		{"l", 6},
		{"l", 9},
		{"l", 9},
		{"j", 10},
		{"k", 9},
	}
	for _, s := range steps {
		press(m, s.key)
		assert.Equal(t, s.want, m.Cursor(), "after %s", s.key)
	}
}

func TestModel_NoticeExpires(t *testing.T) {
	m, _ := newTestModel(t, nil)

	press(m, "t")
	stale := m.notice.seq
	press(m, "r")
	require.NotEmpty(t, m.Notice())

	m.Update(clearNoticeMsg{seq: stale})
	assert.NotEmpty(t, m.Notice(), "an older timer must not clear a newer notice")

	m.Update(clearNoticeMsg{seq: m.notice.seq})
	assert.Empty(t, m.Notice())

	press(m, "p")
	press(m, "esc")
	assert.Empty(t, m.Notice())
}

func TestModel_NewGameRecordsResult(t *testing.T) {
	sb := &testutil.MockScoreboard{}
	m, _ := newTestModel(t, sb)
	sb.On("RecordResult", mock.Anything, mock.MatchedBy(func(res storage.Result) bool {
		return res.Player == "alice" && res.Score == 1 && res.GameID != ""
	})).Return(nil).Once()

	set := firstSet(t, m)
	selectCards(t, m, set[:]...)
	oldID := m.game.ID()
	m.cursor = 4

	msgs := drain(press(m, "n"))

	assert.Equal(t, 0, m.game.Score())
	assert.NotEqual(t, oldID, m.game.ID())
	assert.Equal(t, 0, m.Cursor())
	assert.Contains(t, msgs, tea.Msg(resultRecordedMsg{gameID: oldID}))
	sb.AssertExpectations(t)
}

func TestModel_ResultRecordedOnce(t *testing.T) {
	sb := &testutil.MockScoreboard{}
	m, _ := newTestModel(t, sb)

	assert.Nil(t, m.recordResult(), "nothing to record without a score")

	sb.On("RecordResult", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
	set := firstSet(t, m)
	selectCards(t, m, set[:]...)

	cmd := m.recordResult()
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, resultRecordedMsg{gameID: m.game.ID(), err: errors.New("redis down")}, msg)
	m.Update(msg)

	assert.Nil(t, m.recordResult())
	sb.AssertExpectations(t)
}

func TestModel_Scoreboard(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		m, _ := newTestModel(t, nil)
		press(m, "s")
		assert.Equal(t, "Scoreboard is disabled.", m.Notice())
	})

	t.Run("entries", func(t *testing.T) {
		sb := &testutil.MockScoreboard{}
		sb.On("Top", mock.Anything, scoreboardSize).Return([]storage.LeaderboardEntry{
			{Rank: 1, Player: "bob", BestScore: 21, Games: 3, TotalSets: 50},
		}, nil)
		m, _ := newTestModel(t, sb)

		msgs := drain(press(m, "s"))
		require.Len(t, msgs, 1)
		m.Update(msgs[0])

		assert.Contains(t, m.Notice(), "bob")
		sb.AssertExpectations(t)
	})

	t.Run("error", func(t *testing.T) {
		sb := &testutil.MockScoreboard{}
		sb.On("Top", mock.Anything, scoreboardSize).Return(nil, errors.New("timeout"))
		m, _ := newTestModel(t, sb)

		msgs := drain(press(m, "s"))
		require.Len(t, msgs, 1)
		m.Update(msgs[0])

		assert.Equal(t, "Scoreboard unavailable.", m.Notice())
	})
}

func TestModel_PlayToGameOver(t *testing.T) {
	m, snd := newTestModel(t, nil)

	for !m.game.Over() {
		sets := m.game.ActiveSets()
		if len(sets) == 0 {
			press(m, "r")
			continue
		}
		selectCards(t, m, sets[0][:]...)
	}

	assert.True(t, strings.HasPrefix(m.Notice(), "Game over!"))
	assert.Equal(t, sound.CueGameOver, snd.Played[len(snd.Played)-1])
	assert.Less(t, m.Cursor(), max(1, m.game.Board().Len()))
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	out := m.View()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "Score: 0")

	press(m, "?")
	assert.Contains(t, m.View(), "Rules")

	press(m, "r")
	assert.Equal(t, 12, m.game.Board().Len(), "board keys are ignored on the rules screen")

	press(m, "esc")
	assert.Contains(t, m.View(), "Score: 0")
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel(game.New(game.WithSeed(1)), Options{})

	assert.Equal(t, "player", m.opts.Player)
	assert.Equal(t, sound.Mute{}, m.opts.Sound)
	assert.NotNil(t, m.opts.Logger)
	assert.Nil(t, m.Init())
}
