package signature

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/drand/hashsig/fs"
)

// ensureParentFolder creates path's parent directory with permission 0740
// (owner read/write/execute, group read) if it does not already exist.
func ensureParentFolder(path string) {
	if dir := filepath.Dir(path); dir != "." {
		fs.CreateSecureFolder(dir)
	}
}

// SaveSecretKey writes sk's TOML representation to path with
// owner-only permissions.
func SaveSecretKey(sk *SecretKey, path string) error {
	ensureParentFolder(path)
	f, err := fs.CreateSecureFile(path)
	if err != nil {
		return fmt.Errorf("signature: creating %s: %w", path, err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(sk.TOML())
}

// LoadSecretKey reads a TOML-encoded SecretKey from path. The caller must
// still resolve scheme-specific fields (PRF, Hash, MessageHash, Encode)
// onto the returned key's Params before signing. The leaf-hash cache is
// not loaded: Sign rebuilds it on first use, or the caller can call
// RebuildLeafHashes beforehand.
func LoadSecretKey(path string) (*SecretKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("signature: reading %s: %w", path, err)
	}
	var shadow secretKeyTOML
	if _, err := toml.Decode(string(data), &shadow); err != nil {
		return nil, fmt.Errorf("signature: parsing %s: %w", path, err)
	}
	sk := new(SecretKey)
	if err := sk.FromTOML(&shadow); err != nil {
		return nil, err
	}
	return sk, nil
}

// SavePublicKey writes pk's TOML representation to path.
func SavePublicKey(pk *PublicKey, path string) error {
	ensureParentFolder(path)
	f, err := fs.CreateSecureFile(path)
	if err != nil {
		return fmt.Errorf("signature: creating %s: %w", path, err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(pk.TOML())
}

// LoadPublicKey reads a TOML-encoded PublicKey from path. As with
// LoadSecretKey, scheme-specific fields on Params must be re-attached by
// the caller before verifying.
func LoadPublicKey(path string) (*PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("signature: reading %s: %w", path, err)
	}
	var shadow publicKeyTOML
	if _, err := toml.Decode(string(data), &shadow); err != nil {
		return nil, fmt.Errorf("signature: parsing %s: %w", path, err)
	}
	pk := new(PublicKey)
	if err := pk.FromTOML(&shadow); err != nil {
		return nil, err
	}
	return pk, nil
}

// SaveSignature writes sig's TOML representation to path.
func SaveSignature(sig *Signature, path string) error {
	ensureParentFolder(path)
	f, err := fs.CreateSecureFile(path)
	if err != nil {
		return fmt.Errorf("signature: creating %s: %w", path, err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(sig.TOML())
}

// LoadSignature reads a TOML-encoded Signature from path.
func LoadSignature(path string) (*Signature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("signature: reading %s: %w", path, err)
	}
	var shadow signatureTOML
	if _, err := toml.Decode(string(data), &shadow); err != nil {
		return nil, fmt.Errorf("signature: parsing %s: %w", path, err)
	}
	sig := new(Signature)
	if err := sig.FromTOML(&shadow); err != nil {
		return nil, err
	}
	return sig, nil
}
