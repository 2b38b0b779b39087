package templates

// CertificateDestination is where an accepted signing certificate is copied.
const CertificateDestination = "script/certificates/development.p12"

// certificateGroup is the group name reported for the certificate selection.
const certificateGroup = "certificate"

// Select returns the files to materialize for run, in catalog order.
//
// Groups are included when their flag is enabled. The signing certificate
// follows the travis group when travis is enabled and a certificate was
// accepted. Destinations have PathToken replaced by the project name.
func Select(c *Catalog, run Run) []Selection {
	name := run.ProjectName()
	wantCert := run.Flags.Travis && run.CertPath != ""
	var out []Selection

	for _, g := range c.Groups {
		if !run.Flags.Enabled(g.Include) {
			continue
		}

		for _, e := range g.Entries {
			mode := e.Mode
			if mode == "" {
				mode = Substitute
			}
			out = append(out, Selection{
				Source:      e.Source,
				Destination: ResolveDestination(e.DestinationPattern(), name),
				Mode:        mode,
				Executable:  e.Executable,
				Group:       g.Name,
			})
		}

		if wantCert && g.Include == IncludeTravis {
			out = append(out, certificateSelection(run.CertPath))
			wantCert = false
		}
	}

	if wantCert {
		out = append(out, certificateSelection(run.CertPath))
	}

	return out
}

func certificateSelection(certPath string) Selection {
	return Selection{
		Source:      certPath,
		Destination: CertificateDestination,
		Mode:        Verbatim,
		External:    true,
		Group:       certificateGroup,
	}
}

// Destinations returns the destination paths of selections, in order.
func Destinations(sels []Selection) []string {
	out := make([]string, len(sels))
	for i, s := range sels {
		out[i] = s.Destination
	}
	return out
}
