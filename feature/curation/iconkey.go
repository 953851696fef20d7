package curation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// AssetExtension is the only file extension the indexer considers.
const AssetExtension = ".svg"

var fileNamePattern = regexp.MustCompile(`^ic_fluent_([0-9a-z_]+)_([0-9]+)_([a-z]+)\.svg$`)

// IconKey identifies one physical asset variant.
type IconKey struct {
	Icon  string `json:"icon" yaml:"icon"`
	Style string `json:"style" yaml:"style"`
	Size  int    `json:"size" yaml:"size"`
}

// ParseFileName parses a basename such as "ic_fluent_add_24_regular.svg".
// ok is false when the name does not follow the asset grammar.
func ParseFileName(name string) (key IconKey, ok bool) {
	m := fileNamePattern.FindStringSubmatch(name)
	if m == nil {
		return IconKey{}, false
	}
	size, err := strconv.Atoi(m[2])
	if err != nil {
		return IconKey{}, false
	}
	return IconKey{Icon: m[1], Style: m[3], Size: size}, true
}

// FileName rebuilds the canonical source filename for the key.
func (k IconKey) FileName() string {
	return fmt.Sprintf("ic_fluent_%s_%d_%s%s", k.Icon, k.Size, k.Style, AssetExtension)
}

// OutputName is the curated filename: the icon name with hyphens instead of underscores.
func (k IconKey) OutputName() string {
	return OutputName(k.Icon)
}

// OutputName converts an icon name to its curated filename.
func OutputName(icon string) string {
	return strings.ReplaceAll(icon, "_", "-") + AssetExtension
}

// Less orders keys by icon, then style, then size.
func (k IconKey) Less(o IconKey) bool {
	if k.Icon != o.Icon {
		return k.Icon < o.Icon
	}
	if k.Style != o.Style {
		return k.Style < o.Style
	}
	return k.Size < o.Size
}

func (k IconKey) String() string {
	return fmt.Sprintf("[icon: %s, style: %s, size: %d]", k.Icon, k.Style, k.Size)
}
