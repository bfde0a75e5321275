package bch

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Code profiles are named (m, t, prim) presets loaded from a YAML file,
// so tools can refer to a code as "nand-8bit" instead of raw numbers:
//
//	codes:
//	  - name: nand-8bit
//	    m: 13
//	    t: 8
//	  - name: smallblock
//	    m: 5
//	    t: 2
//	    prim: 0x25

type CodeProfile struct {
	Name string `yaml:"name"`
	M    int    `yaml:"m"`
	T    int    `yaml:"t"`
	Prim uint32 `yaml:"prim"` // 0 selects the published default for M.
}

type profileFile struct {
	Codes []CodeProfile `yaml:"codes"`
}

// LoadProfiles reads a YAML profile file.  Parameter validity is checked
// when a profile is instantiated, not here.
func LoadProfiles(path string) ([]CodeProfile, error) {
	var raw, readErr = os.ReadFile(path)
	if readErr != nil {
		return nil, errors.Wrapf(readErr, "reading code profiles %q", path)
	}

	var pf profileFile
	if unmarshalErr := yaml.Unmarshal(raw, &pf); unmarshalErr != nil {
		return nil, errors.Wrapf(unmarshalErr, "parsing code profiles %q", path)
	}

	if len(pf.Codes) == 0 {
		return nil, errors.Wrapf(ErrInvalidParam, "no codes defined in %q", path)
	}
	for _, p := range pf.Codes {
		if p.Name == "" {
			return nil, errors.Wrapf(ErrInvalidParam, "unnamed code profile in %q", path)
		}
	}
	return pf.Codes, nil
}

func FindProfile(profiles []CodeProfile, name string) (*CodeProfile, error) {
	for i := range profiles {
		if profiles[i].Name == name {
			return &profiles[i], nil
		}
	}
	return nil, errors.Wrapf(ErrInvalidParam, "no code profile named %q", name)
}

// New builds the codec the profile describes.
func (p *CodeProfile) New() (*BCH, error) {
	return New(p.M, p.T, p.Prim)
}
