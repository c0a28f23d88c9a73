package order

// CreditCard is a placeholder payment method. No gateway integration exists.
type CreditCard struct{}

// FetchCreditCardByHashed looks up a card by its hashed code. The lookup is a
// stub and always returns an empty placeholder instance.
func FetchCreditCardByHashed(hashed string) *CreditCard {
	_ = hashed
	return &CreditCard{}
}
