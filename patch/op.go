package patch

// Op is one RFC 6902 operation kind.
type Op string

const (
	Add     Op = "add"
	Remove  Op = "remove"
	Replace Op = "replace"
	Move    Op = "move"
	Copy    Op = "copy"
	Test    Op = "test"
)

func Ops() []Op {
	return []Op{Add, Remove, Replace, Move, Copy, Test}
}

func (o Op) Valid() bool {
	switch o {
	case Add, Remove, Replace, Move, Copy, Test:
		return true
	default:
		return false
	}
}

func (o Op) String() string {
	return string(o)
}
