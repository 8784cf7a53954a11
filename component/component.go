// Package component wraps rewritten SVG markup in a typed React component.
package component

import (
	"fmt"

	"github.com/LegacyCodeHQ/cozy/markup"
)

// Extension is the file extension of generated components.
const Extension = ".tsx"

const template = `import React from "react";

function %[1]s(props: React.JSX.IntrinsicElements["svg"]) {
  return (
    %[2]s
  );
}

export default %[1]s;
`

// Render returns the formatted component source for name wrapping svg.
func Render(name, svg string) string {
	return markup.Format(fmt.Sprintf(template, name, svg))
}

// FileName returns the generated file name for a component.
func FileName(name string) string {
	return name + Extension
}
