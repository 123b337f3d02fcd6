// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethersphere/country-sdk/pkg/gateway"
	"github.com/ethersphere/country-sdk/pkg/logging"
	"github.com/ethersphere/country-sdk/pkg/onecountry"
	"github.com/ethersphere/country-sdk/pkg/units"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	optionLogVerbosity = "log-verbosity"
	envPrivateKey      = "PRIVATE_KEY"
)

type config struct {
	Endpoint        string
	ContractAddress string
	PrivateKey      string
	EnvFile         string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	var (
		logLevel string
		logger   logging.Logger
	)

	rootCmd := &cobra.Command{
		Use:           "country",
		Short:         "query and rent names through the gateway and .country contracts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if logger, err = logging.NewVerbosity(cmd.ErrOrStderr(), logLevel); err != nil {
				return fmt.Errorf("%s: %w", optionLogVerbosity, err)
			}

			return loadPrivateKey(cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, optionLogVerbosity, "info", "log verbosity level 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace")
	rootCmd.PersistentFlags().StringVar(&cfg.Endpoint, "endpoint", "https://api.harmony.one", "endpoint to chain node")
	rootCmd.PersistentFlags().StringVar(&cfg.ContractAddress, "contract", "", "contract address")
	rootCmd.PersistentFlags().StringVar(&cfg.PrivateKey, "private-key", "", "wallet key, defaults to "+envPrivateKey+" from the env file")
	rootCmd.PersistentFlags().StringVar(&cfg.EnvFile, "env-file", ".env", "file to read "+envPrivateKey+" from")

	getLogger := func() logging.Logger { return logger }

	rootCmd.AddCommand(newGatewayCmd(cfg, getLogger), newOneCountryCmd(cfg, getLogger))

	return rootCmd
}

// loadPrivateKey fills the key from the env file when no flag was given.
// The process environment is left untouched.
func loadPrivateKey(cfg *config) error {
	if cfg.PrivateKey != "" || cfg.EnvFile == "" {
		return nil
	}

	env, err := godotenv.Read(cfg.EnvFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read env file %s: %w", cfg.EnvFile, err)
	}

	cfg.PrivateKey = env[envPrivateKey]

	return nil
}

func newGatewayCmd(cfg *config, logger func() logging.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gateway",
		Short: "gateway contract operations",
	}

	newClient := func() (*gateway.Client, error) {
		return gateway.New(gateway.Config{
			ContractAddress: cfg.ContractAddress,
			Endpoint:        cfg.Endpoint,
			PrivateKey:      cfg.PrivateKey,
		}, gateway.WithLogger(logger()))
	}

	priceCmd := &cobra.Command{
		Use:   "price NAME TO",
		Short: "print the rent price of a name for a destination address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer c.Close()

			price, err := c.GetPrice(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), price)

			return nil
		},
	}

	rentCmd := &cobra.Command{
		Use:   "rent NAME URL SECRET TO",
		Short: "rent a name for a destination address",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer c.Close()

			receipt, err := c.Rent(cmd.Context(), args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}

			printReceipt(cmd, receipt)

			return nil
		},
	}

	cmd.AddCommand(priceCmd, rentCmd)

	return cmd
}

func newOneCountryCmd(cfg *config, logger func() logging.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onecountry",
		Short: ".country contract operations",
	}

	withClient := func(ctx context.Context, f func(c *onecountry.Client) error) error {
		ethClient, err := ethclient.DialContext(ctx, cfg.Endpoint)
		if err != nil {
			return fmt.Errorf("failed to dial %s: %w", cfg.Endpoint, err)
		}
		defer ethClient.Close()

		c, err := onecountry.New(onecountry.Config{
			ContractAddress: cfg.ContractAddress,
			Backend:         ethClient,
			PrivateKey:      cfg.PrivateKey,
		}, onecountry.WithLogger(logger()))
		if err != nil {
			return err
		}

		return f(c)
	}

	priceCmd := &cobra.Command{
		Use:   "price NAME",
		Short: "print the rent price of a name in wei",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(c *onecountry.Client) error {
				price, err := c.GetPriceByName(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), price)

				return nil
			})
		},
	}

	recordCmd := &cobra.Command{
		Use:   "record NAME",
		Short: "print the record of a name as json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(c *onecountry.Client) error {
				record, err := c.GetRecordByName(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(record)
			})
		},
	}

	var price string

	rentCmd := &cobra.Command{
		Use:   "rent NAME URL",
		Short: "rent a name, paying the quoted price unless --price is set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(c *onecountry.Client) error {
				value := price
				if value == "" {
					var err error
					if value, err = c.GetPriceByName(cmd.Context(), args[0]); err != nil {
						return err
					}
				}

				amount, err := units.ParseAmount(value)
				if err != nil {
					return err
				}

				logger().Infof("renting %q for %s", args[0], units.FormatWei(amount))

				receipt, err := c.Rent(cmd.Context(), args[0], args[1], value)
				if err != nil {
					return err
				}

				printReceipt(cmd, receipt)

				return nil
			})
		},
	}
	rentCmd.Flags().StringVar(&price, "price", "", "price in wei to attach")

	updateCmd := &cobra.Command{
		Use:   "update-url NAME URL",
		Short: "change the url of a rented name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(c *onecountry.Client) error {
				receipt, err := c.UpdateURL(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}

				printReceipt(cmd, receipt)

				return nil
			})
		},
	}

	cmd.AddCommand(priceCmd, recordCmd, rentCmd, updateCmd)

	return cmd
}

func printReceipt(cmd *cobra.Command, receipt *types.Receipt) {
	fmt.Fprintf(cmd.OutOrStdout(), "transaction %s mined in block %s, gas used %d\n", receipt.TxHash.Hex(), receipt.BlockNumber, receipt.GasUsed)
}
