// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_Reverts(t *testing.T) {
	revert := New(NotFound, "pool %d does not exist", 3)
	assert.Equal(t, "pool 3 does not exist", revert.Error())
	assert.Equal(t, NotFound, revert.Kind())

	assert.True(t, IsRevertErr(revert))
	assert.False(t, IsRevertErr(nil))
	assert.False(t, IsRevertErr(fmt.Errorf("test")))
	assert.False(t, IsRevertErr(big.NewInt(0)))
}

func Test_Is(t *testing.T) {
	revert := New(FunctionPaused, "withdraw is paused")

	assert.True(t, Is(revert, FunctionPaused))
	assert.False(t, Is(revert, NotReady))
	assert.False(t, Is(nil, FunctionPaused))
	assert.False(t, Is(fmt.Errorf("withdraw is paused"), FunctionPaused))

	// kind survives wrapping
	wrapped := errors.Wrap(revert, "stake")
	assert.True(t, Is(wrapped, FunctionPaused))
	assert.True(t, IsRevertErr(wrapped))
}
