// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tokenet

import "math/big"

// Constants of the token economy.
const (
	BlockInterval uint64 = 10 // time interval between two consecutive blocks, in seconds.

	TaxDenominator uint16 = 10000 // basis-point denominator of all tax rates.
	MaxTaxBps      uint16 = 2500  // hard ceiling of buy/sell tax, 25%.

	DefaultBuyTaxBps  uint16 = 500  // 5%
	DefaultSellTaxBps uint16 = 1000 // 10%

	MinTxDelayFloor uint64 = 10 // lowest admissible anti-bot delay, in seconds.

	// MaxUnstakeLockBlocks caps the unstake lock at one year of blocks,
	// keeping unlock block numbers clear of uint32 wraparound.
	MaxUnstakeLockBlocks uint32 = 3_155_760
)

// RewardPrecision is the fixed-point scale of accumulated reward per staked unit.
var RewardPrecision = big.NewInt(1e12)

// Keys of governance params.
var (
	KeyTaxShareRetained = BytesToBytes32([]byte("tax-share-retained"))
	KeyTaxShareTreasury = BytesToBytes32([]byte("tax-share-treasury"))
	KeyTaxShareBurn     = BytesToBytes32([]byte("tax-share-burn"))
	KeyMinTxDelayFloor  = BytesToBytes32([]byte("min-tx-delay-floor"))

	InitialTaxShareRetained = big.NewInt(4000) // 40% of collected tax stays in the token contract
	InitialTaxShareTreasury = big.NewInt(3000) // 30% to treasury
	InitialTaxShareBurn     = big.NewInt(3000) // 30% burned
)
