package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/palemoky/set-game/internal/apperrors"
	"github.com/palemoky/set-game/internal/game/card"
	"github.com/palemoky/set-game/internal/game/tutorial"
	"github.com/palemoky/set-game/internal/sound"
	"github.com/palemoky/set-game/internal/storage"
	"github.com/palemoky/set-game/internal/ui/view"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearNoticeMsg:
		if msg.seq == m.notice.seq {
			m.notice.text = ""
			m.hint = card.Card{}
		}
		return m, nil

	case resultRecordedMsg:
		if msg.err != nil {
			m.opts.Logger.Error("failed to record result", zap.String("game_id", msg.gameID), zap.Error(msg.err))
		} else {
			m.opts.Logger.Info("result recorded", zap.String("game_id", msg.gameID))
		}
		return m, nil

	case scoreboardMsg:
		if msg.err != nil {
			m.opts.Logger.Error("failed to load scoreboard", zap.Error(msg.err))
			return m, m.setNotice("Scoreboard unavailable.", noticeError, m.opts.MessageTimeout)
		}
		return m, m.setNotice(view.RenderLeaderboard(msg.entries), noticeInfo, 0)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Sequence(m.recordResult(), tea.Quit)
	}

	if m.screen == screenRules {
		if key.Matches(msg, m.keys.Rules, m.keys.Back) {
			m.screen = screenBoard
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Select):
		return m.selectCard()
	case key.Matches(msg, m.keys.ThirdCard):
		return m.showThirdCard()
	case key.Matches(msg, m.keys.Sets):
		return m.showPossibleSets()
	case key.Matches(msg, m.keys.AddRow):
		return m.addRow()
	case key.Matches(msg, m.keys.NewGame):
		return m.newGame()
	case key.Matches(msg, m.keys.Scoreboard):
		return m.loadScoreboard()
	case key.Matches(msg, m.keys.Rules):
		m.screen = screenRules
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Back):
		m.notice.text = ""
	}
	return nil
}

// setNotice shows a message; a zero timeout keeps it until replaced.
func (m *Model) setNotice(text string, kind noticeKind, timeout time.Duration) tea.Cmd {
	m.notice.seq++
	m.notice.text = text
	m.notice.kind = kind
	m.hint = card.Card{}
	if timeout <= 0 {
		return nil
	}
	seq := m.notice.seq
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

// moveCursor moves within the column-major grid.
func (m *Model) moveCursor(dRow, dCol int) {
	b := m.game.Board()
	rows := b.RowWidth()
	next := m.cursor + dRow + dCol*rows
	if dRow != 0 && next/rows != m.cursor/rows {
		return
	}
	if next < 0 || next >= b.Len() {
		return
	}
	m.cursor = next
}

func (m *Model) clampCursor() {
	if n := m.game.Board().Len(); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

// selectCard toggles the card under the cursor and judges a full selection.
func (m *Model) selectCard() tea.Cmd {
	b := m.game.Board()
	c, ok := b.At(m.cursor)
	if !ok {
		return nil
	}

	selected, err := b.Toggle(c)
	if err != nil {
		return m.setNotice(err.Error(), noticeError, m.opts.MessageTimeout)
	}
	if !selected || !b.Full() {
		return nil
	}

	isSet, err := b.CheckSet()
	if err != nil {
		return m.setNotice(err.Error(), noticeError, m.opts.MessageTimeout)
	}

	if !isSet {
		var reasons []string
		for _, a := range b.Violations() {
			reasons = append(reasons, a.String())
		}
		b.DeselectAll()
		m.opts.Sound.Play(sound.CueNotSet)
		return m.setNotice("Not a set! ("+strings.Join(reasons, ", ")+")", noticeError, m.opts.MessageTimeout)
	}

	b.DiscardSelected()
	m.game.RecordSetFound()
	b.AddRow()
	m.clampCursor()
	m.opts.Sound.Play(sound.CueSetFound)

	if m.game.Over() {
		return m.finish()
	}
	return m.setNotice("This is a set!", noticeSuccess, m.opts.MessageTimeout)
}

// finish announces the end of the round and records it.
func (m *Model) finish() tea.Cmd {
	m.opts.Sound.Play(sound.CueGameOver)
	return tea.Batch(
		m.setNotice(fmt.Sprintf("Game over! You found %d sets. Press n for a new game.", m.game.Score()), noticeSuccess, 0),
		m.recordResult(),
	)
}

func (m *Model) showThirdCard() tea.Cmd {
	third, err := tutorial.Hint(m.game.Board())
	if errors.Is(err, apperrors.ErrIncompleteSelection) {
		return m.setNotice("Select exactly two cards to see the third.", noticeInfo, m.opts.MessageTimeout)
	}
	if err != nil {
		return m.setNotice(err.Error(), noticeError, m.opts.MessageTimeout)
	}
	cmd := m.setNotice("The third card to complete this Set is: "+third.Describe()+".", noticeInfo, m.opts.MessageTimeout)
	m.hint = third
	return cmd
}

func (m *Model) showPossibleSets() tea.Cmd {
	return m.setNotice(view.RenderSets(m.game.ActiveSets()), noticeInfo, 0)
}

func (m *Model) addRow() tea.Cmd {
	n := m.game.Board().AddRow()
	if n == 0 {
		return m.setNotice("The deck is empty.", noticeInfo, m.opts.MessageTimeout)
	}
	m.opts.Sound.Play(sound.CueDeal)
	if m.game.Over() {
		return m.finish()
	}
	return m.setNotice(fmt.Sprintf("Added %d cards.", n), noticeInfo, m.opts.MessageTimeout)
}

func (m *Model) newGame() tea.Cmd {
	record := m.recordResult()
	m.game.Restart()
	m.cursor = 0
	m.recorded = false
	m.opts.Sound.Play(sound.CueDeal)
	return tea.Batch(record, m.setNotice("New game!", noticeInfo, m.opts.MessageTimeout))
}

// recordResult saves the current game once, if it scored anything.
func (m *Model) recordResult() tea.Cmd {
	if m.opts.Scoreboard == nil || m.recorded || m.game.Score() == 0 {
		return nil
	}
	m.recorded = true

	s := m.game.Summary()
	res := storage.Result{
		GameID:     s.GameID,
		Player:     m.opts.Player,
		Score:      s.Score,
		CardsLeft:  s.CardsLeft,
		DurationMS: s.Duration.Milliseconds(),
		Finished:   s.Finished,
	}
	sb := m.opts.Scoreboard
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		return resultRecordedMsg{gameID: res.GameID, err: sb.RecordResult(ctx, res)}
	}
}

func (m *Model) loadScoreboard() tea.Cmd {
	if m.opts.Scoreboard == nil {
		return m.setNotice("Scoreboard is disabled.", noticeInfo, m.opts.MessageTimeout)
	}
	sb := m.opts.Scoreboard
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		entries, err := sb.Top(ctx, scoreboardSize)
		return scoreboardMsg{entries: entries, err: err}
	}
}
