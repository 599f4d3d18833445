package ports

// Observer recibe eventos de los servicios para métricas. Lo implementa
// infrastructure/metrics; en pruebas puede ser nil.
type Observer interface {
	ForcedLogout(reason string)
	LoadFailed(collection string)
	SetCartItems(n int)
}

// NopObserver descarta todos los eventos.
type NopObserver struct{}

func (NopObserver) ForcedLogout(string) {}
func (NopObserver) LoadFailed(string)   {}
func (NopObserver) SetCartItems(int)    {}
