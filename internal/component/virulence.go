// internal/component/virulence.go
package component

// VirulentMark — заразная метка: когда носитель умирает, все живые
// враги в радиусе получают урон и ослабленную копию метки. Каждый
// шаг распространения умножает урон на коэффициент затухания и
// увеличивает глубину; на максимальной глубине цепочка обрывается.
type VirulentMark struct {
	SpreadDamage  float64
	SpreadRadius  float64
	ChainDepth    int
	MaxChainDepth int
	Falloff       float64
}

// CanSpread — метка еще не достигла предельной глубины.
func (m *VirulentMark) CanSpread() bool {
	return m.ChainDepth < m.MaxChainDepth
}

// SpreadCopy возвращает ослабленную копию метки для следующего звена
// цепочки, либо nil на предельной глубине.
func (m *VirulentMark) SpreadCopy() *VirulentMark {
	if !m.CanSpread() {
		return nil
	}
	return &VirulentMark{
		SpreadDamage:  m.SpreadDamage * m.Falloff,
		SpreadRadius:  m.SpreadRadius,
		ChainDepth:    m.ChainDepth + 1,
		MaxChainDepth: m.MaxChainDepth,
		Falloff:       m.Falloff,
	}
}
