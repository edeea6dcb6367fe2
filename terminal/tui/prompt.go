package tui

import (
	"github.com/hashicorp/go-hclog"

	"github.com/lixenwraith/textmode/terminal"
)

// DefaultHistory is the number of entries a Prompt remembers
const DefaultHistory = 32

// PromptOpts configures a Prompt
type PromptOpts struct {
	Prompt  string // leading text, e.g. "/" or ":"
	History int    // 0 uses DefaultHistory
}

// Prompt is a one-row line editor with a history of entered lines
type Prompt struct {
	*View
	log hclog.Logger

	prompt     string
	text       []rune
	history    []string
	maxHistory int
	hpos       int // history index being edited, len(history) for a fresh line
	hooked     bool
}

// NewPrompt creates and registers a borderless prompt on the first row of frame
func NewPrompt(ctx *Context, frame Rect, colors *ColorSet, opts PromptOpts) (*Prompt, error) {
	v, err := newView(ctx, frame, colors, ViewOpts{Borderless: true})
	if err != nil {
		return nil, err
	}
	p := &Prompt{
		View:       v,
		log:        ctx.log.Named("prompt"),
		prompt:     opts.Prompt,
		maxHistory: opts.History,
	}
	if p.maxHistory <= 0 {
		p.maxHistory = DefaultHistory
	}
	v.SetCursorRenderer(p.drawLine)
	ctx.Register(p)
	return p, nil
}

// SetPrompt changes the leading text
func (p *Prompt) SetPrompt(s string) {
	p.prompt = s
}

// Text returns the line entered by the last Run
func (p *Prompt) Text() string {
	return string(p.text)
}

// History returns the entered lines, oldest first
func (p *Prompt) History() []string {
	return p.history
}

// Last returns the most recent history entry
func (p *Prompt) Last() (string, bool) {
	if len(p.history) == 0 {
		return "", false
	}
	return p.history[len(p.history)-1], true
}

// Hooked reports whether the last Run returned a global hotkey result
func (p *Prompt) Hooked() bool {
	return p.hooked
}

func (p *Prompt) Draw() {
	p.View.Draw()
	p.drawLine()
}

// drawLine shows the prompt and the tail of the text that fits, followed by the cursor
func (p *Prompt) drawLine() {
	line := p.prompt + string(p.text)
	if n, w := RuneLen(line), p.bounds.W-1; n > w {
		line = SliceRunes(line, n-w, w)
	}
	p.WriteLine(0, 0, line, terminal.Style{})
	if p.focus {
		p.WriteAt(RuneLen(line), 0, " ", p.colors.Style(RoleCursor))
	}
}

// Notify shows msg in the error style until the next key
func (p *Prompt) Notify(msg string) {
	p.Show()
	p.WriteLine(0, 0, msg, p.colors.Style(RoleError))
	p.ctx.ReadKey()
	p.Hide()
}

func (p *Prompt) remember(s string) {
	if s == "" {
		return
	}
	if last, ok := p.Last(); ok && last == s {
		return
	}
	p.history = append(p.history, s)
	if n := len(p.history); n > p.maxHistory {
		p.history = p.history[n-p.maxHistory:]
	}
}

func (p *Prompt) recall(i int) {
	p.hpos = i
	if i < len(p.history) {
		p.text = []rune(p.history[i])
	} else {
		p.text = p.text[:0]
	}
	p.drawLine()
}

// Run edits a fresh line. Enter returns Choice(0) with the line in Text;
// Escape returns ReturnToPrevious.
func (p *Prompt) Run() Result {
	p.text = p.text[:0]
	p.hpos = len(p.history)
	p.hooked = false
	p.Show()
	p.drawLine()

	for {
		ev := p.ctx.ReadKey()
		switch ev.Key {
		case terminal.KeyEscape, terminal.KeyClosed:
			p.Hide()
			return Transfer(ReturnToPrevious)
		case terminal.KeyEnter:
			p.remember(p.Text())
			p.Hide()
			p.log.Debug("enter", "text", p.Text())
			return Choice(0)
		case terminal.KeyBackspace:
			if n := len(p.text); n > 0 {
				p.text = p.text[:n-1]
				p.drawLine()
			}
		case terminal.KeyCtrlU:
			p.text = p.text[:0]
			p.drawLine()
		case terminal.KeyUp:
			if p.hpos > 0 {
				p.recall(p.hpos - 1)
			}
		case terminal.KeyDown:
			if p.hpos < len(p.history) {
				p.recall(p.hpos + 1)
			}
		case terminal.KeyRune:
			p.text = append(p.text, ev.Rune)
			p.drawLine()
		default:
			if res, ok := p.ctx.Hotkey(ev); ok {
				p.Hide()
				p.hooked = true
				return res
			}
		}
	}
}
