package events

import "github.com/atomicstack/happie-menu/internal/logging"

type UITracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Command = CommandTracer{}
)

func (UITracer) Navigate(from, to string) {
	logging.Trace("ui.navigate", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Theme(dark bool) {
	logging.Trace("ui.theme", map[string]interface{}{"dark": dark})
}

func (UITracer) Focus(screen, field string) {
	logging.Trace("ui.focus", map[string]interface{}{"screen": screen, "field": field})
}

func (UITracer) Notice(title, body string) {
	logging.Trace("ui.notice", map[string]interface{}{"title": title, "body": body})
}

func (UITracer) NoticeDismissed(title string) {
	logging.Trace("ui.notice.dismiss", map[string]interface{}{"title": title})
}

func (CommandTracer) Dispatch(action, outcome string) {
	logging.Trace("command.dispatch", map[string]interface{}{"action": action, "outcome": outcome})
}
