package config_test

import (
	"os"
	"testing"

	"github.com/saulo-duarte/careerpilot-lambda/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	os.Setenv("CRYPTO_KEY", "short-key")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("InitCrypto should panic with a short key, but did not.")
		}
	}()

	t.Run("ValidKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", testKey)

		config.InitCrypto()
	})
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("SimpleText", func(t *testing.T) {
		plaintext := "secret refresh token payload"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decryptedtext, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}

		if decryptedtext != plaintext {
			t.Errorf("Decrypted text ('%s') does not match the original ('%s')",
				decryptedtext, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Errorf("Encryption is not randomized (nonce/IV). Ciphertexts should differ.")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		plaintext := ""
		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decryptedtext, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decryptedtext != plaintext {
			t.Errorf("Decrypted empty text is incorrect: '%s'", decryptedtext)
		}
	})

	t.Run("TamperedCiphertext", func(t *testing.T) {
		ciphertext, err := config.Encrypt("some data")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		if _, err := config.Decrypt("x" + ciphertext); err == nil {
			t.Error("Decrypt should fail on tampered ciphertext, but passed.")
		}
	})
}
