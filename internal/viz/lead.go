package viz

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/responsiv/internal/leads"
)

type leadResultMsg struct {
	receipt leads.Receipt
	err     error
}

// leadForm is the "Get Your Free Audit" dialog.
type leadForm struct {
	open       bool
	input      textinput.Model
	spin       spinner.Model
	fieldErr   string
	submitting bool
}

func newLeadForm() leadForm {
	ti := textinput.New()
	ti.Placeholder = "you@company.com"
	ti.Prompt = "│ "
	ti.CharLimit = 254
	ti.Width = 36

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return leadForm{input: ti, spin: sp}
}

func (f *leadForm) show() tea.Cmd {
	f.open = true
	return f.input.Focus()
}

func (f *leadForm) hide() {
	f.open = false
	f.input.Blur()
}

// submit validates synchronously and only then hands the lead to s.
func (f *leadForm) submit(ctx context.Context, s *leads.Submitter) tea.Cmd {
	if f.submitting {
		return nil
	}
	lead := leads.Lead{Email: f.input.Value()}
	if err := leads.Validate(lead); err != nil {
		var ve *leads.ValidationError
		if errors.As(err, &ve) {
			f.fieldErr = ve.Wrapped.Error()
		} else {
			f.fieldErr = err.Error()
		}
		return nil
	}
	f.fieldErr = ""
	f.submitting = true
	return tea.Batch(f.spin.Tick, func() tea.Msg {
		r, err := s.Submit(ctx, lead)
		return leadResultMsg{receipt: r, err: err}
	})
}

func (f *leadForm) resolve(msg leadResultMsg) {
	f.submitting = false
	if msg.err == nil {
		f.input.Reset()
		f.hide()
	}
}

func (f leadForm) view() string {
	title := MetricValue.Render("Get Your Free Audit")
	desc := Subtle.Width(40).Render("Enter your email to receive a detailed breakdown of your site's responsive performance.")
	field := f.input.View()
	if f.fieldErr != "" {
		field += "\n" + FieldError.Render(f.fieldErr)
	}
	button := ActiveChoice.Render("  Send Request  ")
	if f.submitting {
		button = IdleChoice.Render(" " + f.spin.View() + " Submitting... ")
	}
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", desc, "", field, "", button, "", KeyHint.Render("enter:send  esc:close"))
	return GlassPanel.Padding(1, 2).Render(body)
}
