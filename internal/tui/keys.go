package tui

// Key bindings understood by BrowseModel.
const (
	keyQuit      = "q"
	keyCtrlC     = "ctrl+c"
	keyNext      = "right"
	keyPrev      = "left"
	keyNextAlt   = "n"
	keyPrevAlt   = "p"
	keyFirst     = "home"
	keyLast      = "end"
	keySort      = "s"
	keyReverse   = "r"
	keyMoreRows  = "+"
	keyFewerRows = "-"
)

const helpText = "←/→ page • home/end first/last • s sort • r reverse • +/- rows • q quit"
