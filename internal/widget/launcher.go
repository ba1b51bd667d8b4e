package widget

import "time"

const (
	LauncherAppearAfter = 2 * time.Second
	TooltipShowAfter    = 3 * time.Second
	TooltipHideAfter    = 8 * time.Second
)

// Launcher is the floating contact button with its greeting tooltip.
// Show and hide are measured independently from the moment it appears.
type Launcher struct {
	sched   Scheduler
	phone   string
	visible bool
	tooltip bool

	appear, show, hide Timer
	onChange           func()
}

func NewLauncher(s Scheduler, phone string, onChange func()) *Launcher {
	return &Launcher{sched: s, phone: phone, onChange: onChange}
}

// Enabled is false when no phone number is configured; nothing renders then.
func (l *Launcher) Enabled() bool { return l.phone != "" }

func (l *Launcher) Visible() bool { return l.visible }

func (l *Launcher) TooltipShown() bool { return l.tooltip }

// Mount arms the appear timer.
func (l *Launcher) Mount() {
	if !l.Enabled() || l.appear != nil || l.visible {
		return
	}
	l.appear = l.sched.AfterFunc(LauncherAppearAfter, func() {
		l.appear = nil
		l.visible = true
		l.show = l.sched.AfterFunc(TooltipShowAfter, func() {
			l.show = nil
			l.tooltip = true
			l.changed()
		})
		l.hide = l.sched.AfterFunc(TooltipHideAfter, func() {
			l.hide = nil
			l.tooltip = false
			l.changed()
		})
		l.changed()
	})
}

// Dismiss hides the tooltip now. The show and hide timers keep running, so an
// early dismiss still gets a tooltip at 3s that clears itself at 8s.
func (l *Launcher) Dismiss() {
	l.tooltip = false
	l.changed()
}

// Unmount cancels every timer.
func (l *Launcher) Unmount() {
	stop(&l.appear)
	stop(&l.show)
	stop(&l.hide)
}

func (l *Launcher) changed() {
	if l.onChange != nil {
		l.onChange()
	}
}

func stop(t *Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}
