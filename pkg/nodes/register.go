package nodes

import "github.com/xylemcad/xylem/pkg/catalog"

// RegisterAll adds every built-in node to the catalog. Registration is an
// explicit call by the host, never a package import side effect.
func RegisterAll(c *catalog.Catalog) error {
	table := []catalog.Descriptor{
		{OpCode: OpNumberInput, Title: "Number", Icon: "number.svg", Category: "Inputs", Factory: NewNumberInput},
		{OpCode: OpTextInput, Title: "Text", Icon: "text.svg", Category: "Inputs", Factory: NewTextInput},
		{OpCode: OpNumberSlider, Title: "Slider", Icon: "slider.svg", Category: "Inputs", Factory: NewNumberSlider},

		{OpCode: OpBasicMath, Title: "Math", Icon: "math.svg", Category: "Numbers", Factory: NewBasicMath},
		{OpCode: OpMakeRange, Title: "Range", Icon: "range.svg", Category: "Numbers", Factory: NewMakeRange},
		{OpCode: OpMakeVector, Title: "Vector", Icon: "vector.svg", Category: "Vectors", Factory: NewMakeVector},

		{OpCode: OpDataStructure, Title: "Structure", Icon: "structure.svg", Category: "Lists", Factory: NewDataStructure},
		{OpCode: OpListNext, Title: "Next", Icon: "next.svg", Category: "Lists", Factory: NewListNext},

		{OpCode: OpSolidBox, Title: "Box", Icon: "box.svg", Category: "Solids", Factory: NewSolidBox},
		{OpCode: OpSolidSphere, Title: "Sphere", Icon: "sphere.svg", Category: "Solids", Factory: NewSolidSphere},
		{OpCode: OpSolidCylinder, Title: "Cylinder", Icon: "cylinder.svg", Category: "Solids", Factory: NewSolidCylinder},
		{OpCode: OpSolidBoolean, Title: "Boolean", Icon: "boolean.svg", Category: "Solids", Factory: NewSolidBoolean},
		{OpCode: OpSolidTransform, Title: "Transform", Icon: "transform.svg", Category: "Solids", Factory: NewSolidTransform},

		{OpCode: OpScript, Title: "Script", Icon: "script.svg", Category: "Scripting", Factory: NewScript},

		{OpCode: OpInlet, Title: "Inlet", Icon: "inlet.svg", Category: "Patch", Factory: NewInlet},
		{OpCode: OpOutlet, Title: "Outlet", Icon: "outlet.svg", Category: "Patch", Factory: NewOutlet},

		{OpCode: OpSender, Title: "Sender", Icon: "sender.svg", Category: "Broadcast", Factory: NewSender},
		{OpCode: OpReceiver, Title: "Receiver", Icon: "receiver.svg", Category: "Broadcast", Factory: NewReceiver},
	}
	for _, d := range table {
		if err := c.Register(d); err != nil {
			return err
		}
	}
	return nil
}
