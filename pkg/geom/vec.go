// pkg/geom/vec.go
package geom

import "math"

// Vec2 — точка или направление на плоскости арены.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

func (v Vec2) DistanceSq(o Vec2) float64 {
	return v.Sub(o).LengthSq()
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Normalize возвращает единичный вектор того же направления.
// Вектор нулевой длины остаётся нулевым — вызывающий код не обязан
// проверять длину заранее.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l < 1e-9 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// FromAngle строит единичный вектор по углу в радианах.
func FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// Angle возвращает угол вектора в радианах.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleBetween — угол между двумя направлениями, всегда в [0, π].
func AngleBetween(a, b Vec2) float64 {
	an := a.Normalize()
	bn := b.Normalize()
	dot := an.Dot(bn)
	if dot > 1.0 {
		dot = 1.0
	} else if dot < -1.0 {
		dot = -1.0
	}
	return math.Acos(dot)
}

// Lerp выполняет линейную интерполяцию между двумя точками.
func Lerp(from, to Vec2, t float64) Vec2 {
	return Vec2{
		X: from.X + (to.X-from.X)*t,
		Y: from.Y + (to.Y-from.Y)*t,
	}
}

// LerpScalar выполняет линейную интерполяцию между двумя числами.
func LerpScalar(from, to, t float64) float64 {
	return from + (to-from)*t
}

// ArcHeight — высота параболической дуги в момент t ∈ [0, 1]:
// y(t) = 4·h·t·(1−t). Максимум h достигается в середине полёта,
// в точках t=0 и t=1 высота нулевая.
func ArcHeight(peak, t float64) float64 {
	return 4 * peak * t * (1 - t)
}

// Clamp ограничивает x диапазоном [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
