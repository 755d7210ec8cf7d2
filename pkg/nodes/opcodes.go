// Package nodes implements the built-in node catalog: input widgets,
// arithmetic and list operators, solid generators, the scripted node and
// the sender/receiver broadcast pair.
package nodes

// Stable operation codes. Saved graphs reference nodes by these codes,
// so they must never be renumbered.
const (
	OpNumberInput  = 10
	OpTextInput    = 11
	OpNumberSlider = 12

	OpBasicMath  = 20
	OpMakeRange  = 21
	OpMakeVector = 22

	OpDataStructure = 30
	OpListNext      = 31

	OpSolidBox       = 40
	OpSolidSphere    = 41
	OpSolidCylinder  = 42
	OpSolidBoolean   = 43
	OpSolidTransform = 44

	OpScript = 50

	OpInlet  = 60
	OpOutlet = 61

	OpSender   = 70
	OpReceiver = 71
)
