package bridge

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Variant selects one of the two namespace shapes.
type Variant int

const (
	// VariantFull exposes invoke, fs.readFile, fs.readDir, fs.exists and notifications.notify.
	VariantFull Variant = iota
	// VariantMinimal exposes invoke, fs.readFile and fs.readDir.
	VariantMinimal
)

// Capability names a single member of the namespace.
type Capability int

const (
	CapInvoke Capability = iota
	CapReadFile
	CapReadDir
	CapExists
	CapNotify
)

var variantNames = map[Variant]string{
	VariantFull:    "full",
	VariantMinimal: "minimal",
}

var capabilityPaths = map[Capability]string{
	CapInvoke:   "invoke",
	CapReadFile: "fs.readFile",
	CapReadDir:  "fs.readDir",
	CapExists:   "fs.exists",
	CapNotify:   "notifications.notify",
}

// Variants returns the names of all variants.
func Variants() []string {
	return []string{VariantFull.String(), VariantMinimal.String()}
}

// ParseVariant resolves a variant by name.
func ParseVariant(name string) (Variant, error) {
	v, ok := lo.FindKey(variantNames, strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return 0, fmt.Errorf("unknown bridge variant %q, available: %s", name, strings.Join(Variants(), ", "))
	}
	return v, nil
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

func (v Variant) valid() bool {
	_, ok := variantNames[v]
	return ok
}

// Capabilities lists the namespace members of v in declaration order.
func (v Variant) Capabilities() []Capability {
	switch v {
	case VariantFull:
		return []Capability{CapInvoke, CapReadFile, CapReadDir, CapExists, CapNotify}
	case VariantMinimal:
		return []Capability{CapInvoke, CapReadFile, CapReadDir}
	default:
		return nil
	}
}

// Has reports whether c is a member of v.
func (v Variant) Has(c Capability) bool {
	return lo.Contains(v.Capabilities(), c)
}

// String returns the dotted namespace path of c, e.g. "fs.readDir".
func (c Capability) String() string {
	if path, ok := capabilityPaths[c]; ok {
		return path
	}
	return fmt.Sprintf("Capability(%d)", int(c))
}
