package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errCompromised = errors.New("backend attestation failed")

var statusCmd = &cobra.Command{
	Use:           "status",
	Short:         "Check backend integrity attestation",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStatus,
}

// runStatus prints the attestation and returns errCompromised on any failed
// verification, so scripts get exit code 1 when the backend is not attested.
func runStatus(cmd *cobra.Command, args []string) error {
	_, client, err := loadBackend()
	if err != nil {
		return err
	}

	status, err := client.Handshake(cmd.Context())
	if err != nil {
		fmt.Println(render(styleError, "⚠ COMPROMISED") + "  " +
			render(styleHint, err.Error()))
		return errCompromised
	}

	verified := status.Verified()
	if verified {
		fmt.Println(render(styleSuccess, "✓ VERIFIED") + "  " +
			render(styleHint, "all bid math computed backend-side"))
	} else {
		fmt.Println(render(styleError, "⚠ COMPROMISED") + "  " +
			render(styleHint, "attestation payload failed verification"))
	}

	fmt.Printf("  %s %s\n", render(styleLabel, "Version:"), render(styleValue, status.Version))
	fmt.Printf("  %s %s\n", render(styleLabel, "Sovereignty:"), render(styleValue, status.Sovereignty))
	fmt.Printf("  %s %v\n", render(styleLabel, "Frontend read-only:"), status.FrontendReadOnly)
	fmt.Printf("  %s %v\n", render(styleLabel, "Session active:"), status.SessionActive)
	fmt.Printf("  %s %d\n", render(styleLabel, "Actions logged:"), status.ActionsLogged)
	for name, formula := range status.Formulas {
		fmt.Printf("  %s %s\n", render(styleLabel, name+":"), render(styleHint, formula))
	}

	if !verified {
		return errCompromised
	}
	return nil
}
