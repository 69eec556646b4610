package component

// HoveredTag marks the walker currently under the cursor.
type HoveredTag struct{}

var HoveredTagComponent = NewComponent[HoveredTag]()
