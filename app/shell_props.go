package app

// ShellProps configures the page shell.
type ShellProps struct {
	Title   string
	Lang    string
	MountID string
}

func (p ShellProps) lang() string {
	if p.Lang == "" {
		return "en"
	}
	return p.Lang
}

func (p ShellProps) mountID() string {
	if p.MountID == "" {
		return "app"
	}
	return p.MountID
}
