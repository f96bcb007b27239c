package libdiff

// Op is the operation of a diff line or a change.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Equal:
		return " "
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	default:
		return "?"
	}
}
