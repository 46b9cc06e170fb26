package types

// FunctionSignature is the declared interface of an entry function. The last
// parameter is the implicit transaction context.
type FunctionSignature struct {
	Name       string
	Parameters []*TypeTag
	Return     []*TypeTag
}

// CallParameters are the parameters a caller supplies, the trailing
// context parameter excluded
func (s *FunctionSignature) CallParameters() []*TypeTag {
	if len(s.Parameters) == 0 {
		return nil
	}

	return s.Parameters[:len(s.Parameters)-1]
}
