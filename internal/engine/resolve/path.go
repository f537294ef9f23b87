package resolve

import (
	"path/filepath"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
)

// Template placeholders recognised in a profile's output template.
const (
	PlaceholderProjectRoot = "{ProjectRoot}"
	PlaceholderPlatform    = "{Platform}"
	PlaceholderProfileName = "{ProfileName}"
	PlaceholderProductName = "{ProductName}"
)

// OutputPath returns where the player for p is written.
//
// A non-empty OutputTemplate has its placeholders replaced textually; unknown
// placeholders are left as they are. Without a template the path is
//
//	{ProjectRoot}/Build/{Platform}/{BACKEND}_{RELEASE|DEVELOPMENT}_{HEADLESS|CLIENT}/{ProductName}{ext}
//
// so profiles that differ in backend, development or headless flag never share
// a default path.
func OutputPath(p *domain.Profile, productName, projectRoot string, platform domain.Platform) string {
	if p.OutputTemplate != "" {
		r := strings.NewReplacer(
			PlaceholderProjectRoot, projectRoot,
			PlaceholderPlatform, platform.Label,
			PlaceholderProfileName, p.Name,
			PlaceholderProductName, productName,
		)
		return filepath.FromSlash(r.Replace(p.OutputTemplate))
	}

	return filepath.Join(projectRoot, "Build", platform.Label, variantDir(p), productName+platform.Extension)
}

func variantDir(p *domain.Profile) string {
	shipping := "RELEASE"
	if p.Modes.Development {
		shipping = "DEVELOPMENT"
	}
	kind := "CLIENT"
	if p.Modes.Headless {
		kind = "HEADLESS"
	}
	return p.ScriptingBackend.Label() + "_" + shipping + "_" + kind
}
