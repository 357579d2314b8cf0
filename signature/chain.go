package signature

import "github.com/drand/hashsig/symmetric/tweakhash"

// walkChain applies th steps times to start, the chain value at position
// fromStep, tweaking each application with the chain-hash separator and
// the chain's position (leafIndex, chainIndex, step). Step 1 is the first
// hash of the secret start value; the value returned is the one at
// position fromStep+steps.
//
// Signing walks forward from the secret chain start for codeword[i] steps
// and reveals that intermediate value; verification walks the revealed
// value forward the remaining Base-1-codeword[i] steps to recompute the
// same fixed chain endpoint signing would have reached walking all the
// way from the start.
func walkChain(th tweakhash.TweakableHash, parameter []byte, leafIndex uint32, chainIndex uint16, start []byte, fromStep, steps int) []byte {
	current := start
	for step := fromStep; step < fromStep+steps; step++ {
		tweak := tweakhash.ChainTweak(leafIndex, chainIndex, uint16(step+1))
		current = th.Apply(parameter, tweak, current)
	}
	return current
}
