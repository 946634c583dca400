// Command qbip38 is a CLI front end over pkg/bip38: encrypt and decrypt
// BIP38 private keys, mint keys from intermediate codes, and verify
// confirmation codes without ever handling a passphrase in plaintext on
// the command line more than necessary.
package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/spf13/cobra"

	"github.com/qtum-io/qbip38/internal/cliutil"
	"github.com/qtum-io/qbip38/pkg/bip38"
)

var version = "dev"

func main() {
	var (
		networkFlag string
		logLevel    string
	)

	logger := cliutil.NewLogger(os.Stderr, "info")

	network := func() bip38.Network {
		switch networkFlag {
		case "mainnet":
			return bip38.Mainnet
		case "testnet":
			return bip38.Testnet
		default:
			cliutil.FailString(logger, fmt.Sprintf("unknown network %q (expected mainnet or testnet)", networkFlag))
			return ""
		}
	}

	rootCmd := &cobra.Command{
		Use:     "qbip38",
		Version: version,
		Short:   "BIP38 passphrase-protected private keys",
		Long:    "qbip38 encrypts, decrypts, mints, and verifies BIP38 passphrase-protected private keys for a Bitcoin-derived chain.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = cliutil.NewLogger(os.Stderr, logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&networkFlag, "network", "mainnet", "network version bytes to use (mainnet|testnet)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")

	var (
		encWIF        string
		encPassphrase string
	)
	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a plaintext WIF private key with a passphrase",
		Run: func(cmd *cobra.Command, args []string) {
			encrypted, err := bip38.Encrypt(encWIF, encPassphrase, network())
			if err != nil {
				cliutil.Fail(logger, "encrypt", err)
			}
			fmt.Println(encrypted)
		},
	}
	encryptCmd.Flags().StringVar(&encWIF, "wif", "", "plaintext WIF private key (required)")
	encryptCmd.Flags().StringVar(&encPassphrase, "passphrase", "", "encryption passphrase (required)")
	_ = encryptCmd.MarkFlagRequired("wif")
	_ = encryptCmd.MarkFlagRequired("passphrase")

	var (
		decEncrypted  string
		decPassphrase string
		decDetail     bool
	)
	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a BIP38-encrypted WIF with its passphrase",
		Run: func(cmd *cobra.Command, args []string) {
			result, err := bip38.Decrypt(decEncrypted, decPassphrase, network())
			if err != nil {
				cliutil.Fail(logger, "decrypt", err)
			}
			if !decDetail {
				fmt.Println(result.WIF)
				return
			}
			fmt.Printf("wif: %s\nwif_type: %s\naddress: %s\n", result.WIF, result.WifType, result.Address)
			if result.Lot != nil {
				fmt.Printf("lot: %d\nsequence: %d\n", *result.Lot, *result.Sequence)
			}
		},
	}
	decryptCmd.Flags().StringVar(&decEncrypted, "encrypted", "", "BIP38-encrypted WIF (required)")
	decryptCmd.Flags().StringVar(&decPassphrase, "passphrase", "", "decryption passphrase (required)")
	decryptCmd.Flags().BoolVar(&decDetail, "detail", false, "print address and wif_type alongside the WIF")
	_ = decryptCmd.MarkFlagRequired("encrypted")
	_ = decryptCmd.MarkFlagRequired("passphrase")

	var (
		icPassphrase string
		icLot        int
		icSequence   int
		icHasLotSeq  bool
	)
	intermediateCmd := &cobra.Command{
		Use:   "intermediate-code",
		Short: "Generate an intermediate passphrase code for third-party minting",
		Run: func(cmd *cobra.Command, args []string) {
			opts := &bip38.IntermediateCodeOptions{}
			if icHasLotSeq {
				opts.LotSeq = &bip38.LotAndSequence{Lot: icLot, Sequence: icSequence}
			}
			code, err := bip38.IntermediateCode(icPassphrase, opts)
			if err != nil {
				cliutil.Fail(logger, "intermediate-code", err)
			}
			fmt.Println(code)
		},
	}
	intermediateCmd.Flags().StringVar(&icPassphrase, "passphrase", "", "passphrase to commit to (required)")
	intermediateCmd.Flags().IntVar(&icLot, "lot", 0, "lot number, 100000-999999")
	intermediateCmd.Flags().IntVar(&icSequence, "sequence", 0, "sequence number, 0-4095")
	intermediateCmd.Flags().BoolVar(&icHasLotSeq, "with-lot-sequence", false, "embed --lot/--sequence in the intermediate code")
	_ = intermediateCmd.MarkFlagRequired("passphrase")

	var (
		mintCode       string
		mintCompressed bool
	)
	mintCmd := &cobra.Command{
		Use:   "create-new-encrypted-wif",
		Short: "Mint a new encrypted WIF from an intermediate code",
		Run: func(cmd *cobra.Command, args []string) {
			pkType := bip38.Uncompressed
			if mintCompressed {
				pkType = bip38.Compressed
			}
			result, err := bip38.CreateNewEncryptedWIF(mintCode, pkType, nil, network(), nil)
			if err != nil {
				cliutil.Fail(logger, "create-new-encrypted-wif", err)
			}
			fmt.Printf("encrypted_wif: %s\nconfirmation_code: %s\naddress: %s\n",
				result.EncryptedWIF, result.ConfirmationCode, result.Address)
		},
	}
	mintCmd.Flags().StringVar(&mintCode, "intermediate-code", "", "intermediate passphrase code (required)")
	mintCmd.Flags().BoolVar(&mintCompressed, "compressed", true, "mint a compressed public key")
	_ = mintCmd.MarkFlagRequired("intermediate-code")

	var (
		confirmPassphrase string
		confirmCode       string
		confirmDetail     bool
	)
	confirmCmd := &cobra.Command{
		Use:   "confirm-code",
		Short: "Verify a passphrase against a confirmation code",
		Run: func(cmd *cobra.Command, args []string) {
			address, detail, err := bip38.ConfirmCode(confirmPassphrase, confirmCode, network(), confirmDetail)
			if err != nil {
				cliutil.Fail(logger, "confirm-code", err)
			}
			fmt.Println(address)
			if detail != nil && detail.Lot != nil {
				fmt.Printf("lot: %d\nsequence: %d\n", *detail.Lot, *detail.Sequence)
			}
		},
	}
	confirmCmd.Flags().StringVar(&confirmPassphrase, "passphrase", "", "passphrase to verify (required)")
	confirmCmd.Flags().StringVar(&confirmCode, "confirmation-code", "", "confirmation code (required)")
	confirmCmd.Flags().BoolVar(&confirmDetail, "detail", false, "print lot/sequence alongside the address")
	_ = confirmCmd.MarkFlagRequired("passphrase")
	_ = confirmCmd.MarkFlagRequired("confirmation-code")

	var keygenCompressed bool
	keygenCmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a fresh random private key and print its WIF and address",
		Run: func(cmd *cobra.Command, args []string) {
			priv, err := btcec.NewPrivateKey()
			if err != nil {
				cliutil.Fail(logger, "keygen", err)
			}
			privateKey := priv.Serialize()

			wifType := bip38.WifUncompressed
			pkType := bip38.Uncompressed
			if keygenCompressed {
				wifType, pkType = bip38.WifCompressed, bip38.Compressed
			}

			wif, err := bip38.PrivateKeyToWIF(privateKey, wifType, network())
			if err != nil {
				cliutil.Fail(logger, "keygen", err)
			}
			publicKey, err := bip38.PrivateKeyToPublicKey(privateKey, pkType)
			if err != nil {
				cliutil.Fail(logger, "keygen", err)
			}
			address, err := bip38.PublicKeyToAddress(publicKey, network())
			if err != nil {
				cliutil.Fail(logger, "keygen", err)
			}
			fmt.Printf("wif: %s\naddress: %s\n", wif, address)
		},
	}
	keygenCmd.Flags().BoolVar(&keygenCompressed, "compressed", true, "generate a compressed public key")

	rootCmd.AddCommand(encryptCmd, decryptCmd, intermediateCmd, mintCmd, confirmCmd, keygenCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
