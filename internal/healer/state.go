package healer

import "fmt"

// StateKind is the named part of a PixelState.
type StateKind uint8

const (
	Background StateKind = iota
	Foreground
	Removed
	Adjacent
	Healed
	Grouped

	numStateKinds
)

// GroupID identifies a boundary group. IDs are issued densely from
// FirstGroupID.
type GroupID int

// FirstGroupID is the first group identifier handed out by the grouping
// phase. It must stay above every named state.
const FirstGroupID GroupID = 100

func init() {
	if int(numStateKinds) >= int(FirstGroupID) {
		panic("healer: group ids overlap named pixel states")
	}
}

var kindNames = [...]string{
	Background: "background",
	Foreground: "foreground",
	Removed:    "removed",
	Adjacent:   "adjacent",
	Healed:     "healed",
	Grouped:    "grouped",
}

func (k StateKind) String() string {
	if k < numStateKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("StateKind(%d)", uint8(k))
}

// PixelState is the state of one grid cell. Group is only meaningful when
// Kind is Grouped.
type PixelState struct {
	Kind  StateKind
	Group GroupID
}

// GroupState returns the state of a pixel labeled with group id.
func GroupState(id GroupID) PixelState {
	return PixelState{Kind: Grouped, Group: id}
}

// IsGroup reports whether the pixel belongs to a boundary group.
func (s PixelState) IsGroup() bool {
	return s.Kind == Grouped
}

func (s PixelState) String() string {
	if s.Kind == Grouped {
		return fmt.Sprintf("group(%d)", s.Group)
	}
	return s.Kind.String()
}

// Pixel is a grid coordinate.
type Pixel struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Centroid is the mean position of a group's member pixels.
type Centroid struct {
	Row float64 `json:"row"`
	Col float64 `json:"col"`
}

// BoundaryGroup is one 8-connected cluster of adjacent pixels. It is created
// once by the grouping phase and never modified afterwards.
type BoundaryGroup struct {
	ID             GroupID  `json:"id"`
	Centroid       Centroid `json:"centroid"`
	Representative Pixel    `json:"representative"`
	Size           int      `json:"size"`
}
