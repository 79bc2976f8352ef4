package transaction_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/NeuralTrust/InstallGate/pkg/app/transaction"
	"github.com/NeuralTrust/InstallGate/pkg/common"
	"github.com/NeuralTrust/InstallGate/pkg/infra/logger"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Unix(1700000000, 0)

func newChecker(fs afero.Fs) transaction.Checker {
	return transaction.NewChecker(
		logger.NewNopLogger(),
		fs,
		"/srv/shop",
		common.TransactionCheckFile,
		transaction.WithClock(func() time.Time { return fixedNow }),
	)
}

func writeToken(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, "/srv/shop/var/.httransaction", []byte(content), 0600))
}

func TestChecker_Path(t *testing.T) {
	assert.Equal(t, "/srv/shop/var/.httransaction", newChecker(afero.NewMemMapFs()).Path())
}

func TestChecker_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    bool
	}{
		{name: "missing file", content: nil, want: false},
		{name: "expired", content: ptr(strconv.FormatInt(fixedNow.Unix()-1, 10)), want: false},
		{name: "expires now", content: ptr(strconv.FormatInt(fixedNow.Unix(), 10)), want: true},
		{name: "in the future", content: ptr(strconv.FormatInt(fixedNow.Unix()+600, 10)), want: true},
		{name: "trailing newline", content: ptr(strconv.FormatInt(fixedNow.Unix()+600, 10) + "\n"), want: true},
		{name: "garbage", content: ptr("tomorrow"), want: false},
		{name: "empty", content: ptr(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.content != nil {
				writeToken(t, fs, *tt.content)
			}
			assert.Equal(t, tt.want, newChecker(fs).IsValid(context.Background()))
		})
	}
}

func TestChecker_Remove(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeToken(t, fs, "1")
	c := newChecker(fs)

	require.NoError(t, c.Remove(context.Background()))
	exists, err := afero.Exists(fs, c.Path())
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, c.Remove(context.Background()), "removing an absent token is not an error")
}

func TestChecker_Issue(t *testing.T) {
	fs := afero.NewMemMapFs()
	c := newChecker(fs)

	expiresAt, err := c.Issue(context.Background(), 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(10*time.Minute), expiresAt)

	content, err := afero.ReadFile(fs, c.Path())
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(fixedNow.Unix()+600, 10), string(content))
	assert.True(t, c.IsValid(context.Background()))
}

func ptr(s string) *string {
	return &s
}
