package state

import (
	"github.com/dogechain-lab/objectchain/types"
)

// TxContext carries the identity of the running transaction and mints the
// ids of the objects it creates
type TxContext struct {
	sender  types.Address
	digest  types.Digest
	counter uint64
	minted  map[types.ObjectID]struct{}
}

func NewTxContext(sender types.Address, digest types.Digest) *TxContext {
	return &TxContext{
		sender: sender,
		digest: digest,
		minted: make(map[types.ObjectID]struct{}),
	}
}

func (c *TxContext) Sender() types.Address {
	return c.sender
}

func (c *TxContext) Digest() types.Digest {
	return c.digest
}

// FreshID derives the next object id from the digest and a counter, so ids
// never repeat across or within transactions
func (c *TxContext) FreshID() types.ObjectID {
	id := types.DeriveObjectID(c.digest, c.counter)

	c.counter++
	c.minted[id] = struct{}{}

	return id
}

// CreatedIDs returns the ids minted so far
func (c *TxContext) CreatedIDs() map[types.ObjectID]struct{} {
	ids := make(map[types.ObjectID]struct{}, len(c.minted))
	for id := range c.minted {
		ids[id] = struct{}{}
	}

	return ids
}
