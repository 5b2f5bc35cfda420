package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/lobjects/atom"
	"github.com/katalvlaran/lobjects/host"
)

var (
	objectStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98"))

	outletStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	postStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
)

// printer writes outlet traffic and post texts as they happen.
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer, styled bool) *printer {
	return &printer{w: w, styled: styled}
}

// Tap returns an outlet printing "object[outlet] message".
func (p *printer) Tap(object string, outlet int) host.Outlet {
	return host.OutletFunc(func(msg atom.Message) {
		p.event(host.Event{Object: object, Outlet: outlet, Message: msg})
	})
}

func (p *printer) event(e host.Event) {
	if !p.styled {
		fmt.Fprintln(p.w, e.String())
		return
	}
	fmt.Fprintf(p.w, "%s%s %s\n",
		objectStyle.Render(e.Object),
		outletStyle.Render(fmt.Sprintf("[%d]", e.Outlet)),
		messageStyle.Render(e.Message.String()))
}

// Post prints a post text, boxed when styled.
func (p *printer) Post(text string) {
	if !p.styled {
		fmt.Fprintln(p.w, text)
		return
	}
	fmt.Fprintln(p.w, postStyle.Render(text))
}
