package collection

// Arg is the path argument accepted by Set, Get and Remove. It is one of
// Path, Index, PathList or *Map.
type Arg interface {
	isArg()
}

// Path addresses a single location. In dotted mode it is split on the
// collection's separator.
type Path string

// Index addresses a top-level sequence position. Set with an Index appends
// rather than writing at the given index.
type Index int

// PathList addresses several locations at once.
type PathList []string

func (Path) isArg()     {}
func (Index) isArg()    {}
func (PathList) isArg() {}
func (*Map) isArg()     {}
