package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/hydrantlabs/nocodb-go/internal/constants"
	"github.com/hydrantlabs/nocodb-go/pkg/nocodb"
	"github.com/hydrantlabs/nocodb-go/pkg/nococlient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store credentials for a NocoDB instance",
		Long: `Prompt for a base URL and API token, verify them, and persist them to
the config file (~/.nocodb/config.yml). The token prompt does not echo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			baseURL, token, err := promptCredentials()
			if err != nil {
				return err
			}

			if !skipVerify {
				if err := verifyCredentials(baseURL, token); err != nil {
					return err
				}

				fmt.Println("Connection verified")
			}

			path, err := saveCredentials(baseURL, token)
			if err != nil {
				return err
			}

			fmt.Printf("Credentials saved to %s\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save without probing the instance")

	return cmd
}

func promptCredentials() (string, string, error) {
	baseURL := viper.GetString("base-url")
	if baseURL == "" {
		fmt.Print("Base URL: ")

		reader := bufio.NewReader(os.Stdin)

		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("reading base URL: %w", err)
		}

		baseURL = strings.TrimSpace(line)
	}

	if baseURL == "" {
		return "", "", constants.ErrEmptyURLInput
	}

	token := viper.GetString("token")
	if token == "" {
		fmt.Print("API token: ")

		byteToken, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return "", "", fmt.Errorf("reading token: %w", err)
		}

		fmt.Println()

		token = strings.TrimSpace(string(byteToken))
	}

	if token == "" {
		return "", "", constants.ErrEmptyTokenInput
	}

	return baseURL, token, nil
}

func verifyCredentials(baseURL, token string) error {
	client, err := nococlient.New(&nocodb.Config{
		BaseURL:   baseURL,
		APIToken:  token,
		TLSVerify: viper.GetBool("tls-verify"),
	})
	if err != nil {
		return err
	}

	check := client.VerifyConnection(context.Background())
	if !check.Success {
		return fmt.Errorf("%w: %s", constants.ErrVerifyFailed, check.Message)
	}

	return nil
}

func saveCredentials(baseURL, token string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", constants.ErrNoHomeDirectory
	}

	dir := filepath.Join(home, ".nocodb")
	if err := os.MkdirAll(dir, constants.ConfigDirPerm); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	settings := map[string]string{
		"base-url": baseURL,
		"token":    token,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}

	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return path, nil
}
