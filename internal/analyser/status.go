package analyser

import "context"

// Report summarises the driver state of a project.
type Report struct {
	Platform       string `json:"platform"`
	Supported      bool   `json:"supported"`
	Driver         string `json:"driver,omitempty"`
	BinaryDir      string `json:"binary_dir"`
	BrowserVersion string `json:"browser_version,omitempty"`
	Installed      string `json:"installed_version,omitempty"`
	Required       string `json:"required_version,omitempty"`
	UpToDate       bool   `json:"up_to_date"`
	InstalledError string `json:"installed_error,omitempty"`
	RequiredError  string `json:"required_error,omitempty"`
}

// Status resolves every version the project knows about. Resolution errors
// are recorded in the report instead of being returned.
func (p *Project) Status(ctx context.Context, binaryDir string) Report {
	r := Report{
		Platform:  p.Platform.String(),
		Supported: p.ResolvePlatformSupport(),
		Driver:    p.Driver.Name,
		BinaryDir: binaryDir,
	}
	r.BrowserVersion = p.detectBrowser(ctx)

	installed, err := p.ResolveInstalledDriverVersion(ctx, binaryDir)
	if err != nil {
		r.InstalledError = err.Error()
	}
	r.Installed = installed

	required, err := p.resolveRequired(ctx, r.BrowserVersion)
	if err != nil {
		r.RequiredError = err.Error()
	}
	r.Required = required

	r.UpToDate = r.Installed != "" && r.Installed == r.Required
	return r
}
