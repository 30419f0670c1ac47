package theme

// Agent status icons with semantic colors.
var (
	IconOnline  = PassStyle.Render("●")
	IconBusy    = WarnStyle.Render("◐")
	IconError   = FailStyle.Render("○")
	IconOffline = MutedStyle.Render("○")
)

// Incident severity icons.
var (
	IconSevHigh   = FailStyle.Render("▲")
	IconSevMedium = WarnStyle.Render("▲")
	IconSevLow    = MutedStyle.Render("▲")
)

// Idle state markers for presence rows.
var (
	IconActive   = PassStyle.Render("▪")
	IconSoftIdle = WarnStyle.Render("▪")
	IconHardIdle = FailStyle.Render("▪")
)
