package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/browse"
)

const noticeTTL = 4 * time.Second

// Message types

type loadedMsg browse.LoadResult

type searchTickMsg struct {
	token uint64
}

type searchMsg browse.SearchResult

type detailMsg browse.DetailResult

type playMsg browse.PlayResult

type noticeExpiredMsg struct {
	text string
}

type clipboardMsg struct {
	err error
}

// Commands

func loadCmd(req *browse.LoadRequest) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg(req.Fetch())
	}
}

func searchTickCmd(token uint64) tea.Cmd {
	return tea.Tick(browse.SearchDelay, func(time.Time) tea.Msg {
		return searchTickMsg{token: token}
	})
}

func searchCmd(req *browse.SearchRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	return func() tea.Msg {
		return searchMsg(req.Fetch())
	}
}

func detailCmd(req *browse.DetailRequest) tea.Cmd {
	return func() tea.Msg {
		return detailMsg(req.Fetch())
	}
}

func playCmd(req *browse.PlayRequest) tea.Cmd {
	return func() tea.Msg {
		return playMsg(req.Fetch())
	}
}

func expireNoticeCmd(text string) tea.Cmd {
	if text == "" {
		return nil
	}
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{text: text}
	})
}

func copyCmd(copyText func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: copyText(text)}
	}
}
