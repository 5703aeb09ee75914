package delivery

// Observer receives auth outcomes; *metrics.Metrics implements it.
type Observer interface {
	ObserveSignin(result string)
	ObserveAuthReject()
}

type noopObserver struct{}

func (noopObserver) ObserveSignin(string) {}
func (noopObserver) ObserveAuthReject()   {}
