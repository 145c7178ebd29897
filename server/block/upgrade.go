package block

import (
	"github.com/df-mc/worldupgrader/blockupgrader"
)

// upgradeLegacy runs a decoded Palette JSON entry through worldupgrader's
// block upgrader. Older exports of the block palette resource can still
// carry pre-flattening names and property encodings; upgrading them here,
// at load time, keeps GlobalPalette itself free of any legacy-format
// knowledge. The second return value is false only for an empty name, in
// which case the caller keeps the original name and properties unchanged;
// any other input is passed through blockupgrader.Upgrade and reported as
// upgraded.
func upgradeLegacy(name string, properties map[string]any) (blockupgrader.BlockState, bool) {
	if name == "" {
		return blockupgrader.BlockState{}, false
	}
	upgraded := blockupgrader.Upgrade(blockupgrader.BlockState{
		Name:       name,
		Properties: properties,
	})
	return upgraded, true
}
