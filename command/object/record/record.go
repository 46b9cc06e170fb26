package record

import (
	"fmt"

	"github.com/dogechain-lab/objectchain/command/helper"
	"github.com/dogechain-lab/objectchain/helper/hex"
	"github.com/dogechain-lab/objectchain/types"
)

// Result is the printable form of a stored object
type Result struct {
	ID       string `json:"id"`
	Version  uint64 `json:"version"`
	Owner    string `json:"owner"`
	Type     string `json:"type"`
	Contents string `json:"contents"`
}

func New(obj *types.Object) *Result {
	r := &Result{
		ID:       obj.ID.String(),
		Version:  uint64(obj.Version),
		Owner:    obj.Owner.String(),
		Contents: hex.EncodeToHex(obj.Contents),
	}

	if obj.Type != nil {
		r.Type = obj.Type.String()
	}

	return r
}

func (r *Result) GetOutput() string {
	return helper.FormatKV([]string{
		fmt.Sprintf("ID|%s", r.ID),
		fmt.Sprintf("Version|%d", r.Version),
		fmt.Sprintf("Owner|%s", r.Owner),
		fmt.Sprintf("Type|%s", r.Type),
		fmt.Sprintf("Contents|%s", r.Contents),
	})
}
