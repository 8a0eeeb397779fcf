package profiles

import (
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/hectane/go-acl"
	"github.com/hitrip/tripops/cmd/tripops/config/open"
	yaml "gopkg.in/yaml.v3"
)

var ErrProfileStoreNotFound = errors.New("profile store is not found")
var ErrCannotCreateConfig = errors.New("cannot create profile store")
var ErrCannotUpdateConfig = errors.New("cannot update profile store")
var ErrProfileInvalid = errors.New("tripops profile is invalid")

// DefaultTimeout is the request timeout used when a profile does not specify it.
const DefaultTimeout = 30 * time.Second

// ProfileStore is a map from profile name to Profile.
type ProfileStore map[string]*Profile

type Cert struct {
	// base64 encoded CA certificate
	CA string `yaml:"ca,omitempty"`
}

// Profile is a connection setting for a travel-operations backend.
type Profile struct {
	// URL of the backend. Paths like "api/trips/" are joined to this.
	ApiRoot string `yaml:"apiRoot"`

	Cert Cert `yaml:"cert,omitempty"`

	// request timeout. Zero means DefaultTimeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// username used last time to login with this profile.
	Username string `yaml:"username,omitempty"`

	// "ko" or "en". Empty means the default locale.
	Locale string `yaml:"locale,omitempty"`
}

// RequestTimeout returns the timeout for one request.
func (p *Profile) RequestTimeout() time.Duration {
	if p.Timeout <= 0 {
		return DefaultTimeout
	}
	return p.Timeout
}

func verifyUrl(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

func verifyPEM(b64cert string) bool {
	bin, err := base64.StdEncoding.DecodeString(b64cert)
	if err != nil {
		return false
	}
	blk, _ := pem.Decode(bin)
	return blk != nil
}

// Verify Profile
//
// # Return
//
// nil if it is valid. Otherwise, ErrProfileInvalid error.
func (p *Profile) Verify() error {
	if !verifyUrl(p.ApiRoot) {
		return fmt.Errorf("%w: apiRoot is not URL: %s", ErrProfileInvalid, p.ApiRoot)
	}
	if p.Cert.CA != "" && !verifyPEM(p.Cert.CA) {
		return fmt.Errorf("%w: cert.ca is not PEM", ErrProfileInvalid)
	}
	if p.Timeout < 0 {
		return fmt.Errorf("%w: timeout should not be negative: %s", ErrProfileInvalid, p.Timeout)
	}
	switch p.Locale {
	case "", "ko", "en":
	default:
		return fmt.Errorf("%w: locale should be ko or en: %s", ErrProfileInvalid, p.Locale)
	}

	return nil
}

// LoadProfileStore loads profile store from file.
func LoadProfileStore(filepath string) (ProfileStore, error) {
	buf, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrProfileStoreNotFound, filepath)
		}
		return nil, err
	}
	return Unmarshall(buf)
}

// Unmarshall profile store from yaml in byte array.
func Unmarshall(buf []byte) (ProfileStore, error) {
	ret := ProfileStore{}
	if err := yaml.Unmarshal(buf, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Save profile store to file.
//
// The previous content is kept in "<path>.backup" until writing finishes.
// If writing fails, the backup is left for recovery.
func (ps ProfileStore) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(0700)); err != nil {
		return err
	}

	f, err := openForUpdate(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bkpath := path + ".backup"
	bk, err := open.NewSafeFile(bkpath)
	if err != nil {
		return err
	}
	defer bk.Close()
	if _, err := io.Copy(bk, f); err != nil {
		os.Remove(bkpath)
		return err
	}

	buf, err := yaml.Marshal(ps)
	if err != nil {
		os.Remove(bkpath)
		return err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Write(buf); err != nil {
		return err
	}

	return os.Remove(bkpath)
}

func openForUpdate(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, os.FileMode(0600))
	switch {
	case err == nil:
		// existing file may have loose permission.
		if err := acl.Chmod(path, os.FileMode(0600)); err != nil {
			f.Close()
			return nil, err
		}
		return f, nil
	case os.IsPermission(err):
		return nil, fmt.Errorf(
			"%w, because no permission to write file at %s",
			ErrCannotUpdateConfig, path,
		)
	case os.IsNotExist(err):
		f, err := open.NewSafeFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot create a file at %s", ErrCannotCreateConfig, path)
		}
		return f, nil
	default:
		return nil, err
	}
}
