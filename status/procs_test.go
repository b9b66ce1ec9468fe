package status

import (
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHandle is a scripted ProcessHandle.
type fakeHandle struct {
	pid      int32
	name     string
	cmd      string
	user     string
	domain   string
	ownerErr error
	errCode  int
}

func (f fakeHandle) Pid() int32               { return f.pid }
func (f fakeHandle) Name() (string, error)    { return f.name, nil }
func (f fakeHandle) Cmdline() (string, error) { return f.cmd, nil }
func (f fakeHandle) Owner() (string, string, int, error) {
	return f.user, f.domain, f.errCode, f.ownerErr
}

func TestExtractProcessInfoWithOwner(t *testing.T) {
	h := fakeHandle{
		pid:    1234,
		name:   "agent.exe",
		cmd:    `C:\agent\agent.exe --serve`,
		user:   "operator",
		domain: "CORP",
	}

	info := extractProcessInfo(h)
	assert.Equal(t, "agent.exe", info.Name)
	assert.Equal(t, `C:\agent\agent.exe --serve`, info.Cmd)
	assert.Equal(t, "operator", info.User)
	assert.Equal(t, "CORP", info.UserDomain)
}

func TestExtractProcessInfoSystemPIDAccessDenied(t *testing.T) {
	for _, pid := range []int32{0, 4} {
		h := fakeHandle{
			pid:      pid,
			name:     "System",
			ownerErr: errors.New("access denied"),
			errCode:  errnoAccessDenied,
		}

		info := extractProcessInfo(h)
		assert.Equal(t, "SYSTEM", info.User)
		assert.Equal(t, "NT AUTHORITY", info.UserDomain)
		assert.Equal(t, "System", info.Name)
	}
}

func TestExtractProcessInfoLookupFailureOmitsOwner(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	h := fakeHandle{
		pid:      1234,
		name:     "svc.exe",
		ownerErr: errors.New("access denied"),
		errCode:  errnoAccessDenied,
	}

	info := extractProcessInfo(h)
	assert.Empty(t, info.User)
	assert.Empty(t, info.UserDomain)
	assert.Equal(t, "svc.exe", info.Name)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "1234")
}

func TestExtractProcessInfoEmptyOwnerFields(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	// Lookup succeeded but returned a blank domain; owner fields stay unset.
	h := fakeHandle{pid: 99, name: "init", user: "root"}

	info := extractProcessInfo(h)
	assert.Empty(t, info.User)
	assert.Empty(t, info.UserDomain)
	require.Len(t, hook.Entries, 1)
}
