package member

//go:generate go tool stringer -type=Receiver -trimprefix=Receiver -output=receiver_string.go

// Receiver tells how a method is bound to the analyzed type.
type Receiver int

const (
	ReceiverValue     Receiver = iota // func (t T) M(), callable on T and *T
	ReceiverPointer                   // func (t *T) M(), callable on *T only
	ReceiverInterface                 // method of an interface type
)
