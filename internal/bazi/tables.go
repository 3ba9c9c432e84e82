package bazi

// Lookup tables are arrays sized by the enumeration they are indexed by.
// Each is declared with [...] and pinned by a compile-time length check, so
// adding or dropping an entry breaks the build instead of defaulting.

var stemElements = [...]Element{
	StemJia:  Wood,
	StemYi:   Wood,
	StemBing: Fire,
	StemDing: Fire,
	StemWu:   Earth,
	StemJi:   Earth,
	StemGeng: Metal,
	StemXin:  Metal,
	StemRen:  Water,
	StemGui:  Water,
}

var branchElements = [...]Element{
	BranchZi:   Water,
	BranchChou: Earth,
	BranchYin:  Wood,
	BranchMao:  Wood,
	BranchChen: Earth,
	BranchSi:   Fire,
	BranchWu:   Fire,
	BranchWei:  Earth,
	BranchShen: Metal,
	BranchYou:  Metal,
	BranchXu:   Earth,
	BranchHai:  Water,
}

var hiddenStems = [...][]Stem{
	BranchZi:   {StemGui},
	BranchChou: {StemJi, StemGui, StemXin},
	BranchYin:  {StemJia, StemBing, StemWu},
	BranchMao:  {StemYi},
	BranchChen: {StemWu, StemYi, StemGui},
	BranchSi:   {StemBing, StemWu, StemGeng},
	BranchWu:   {StemDing, StemJi},
	BranchWei:  {StemJi, StemDing, StemYi},
	BranchShen: {StemGeng, StemRen, StemWu},
	BranchYou:  {StemXin},
	BranchXu:   {StemWu, StemXin, StemDing},
	BranchHai:  {StemRen, StemJia},
}

// monthBranches maps Gregorian month-1 to the branch of the solar month
// that starts near the 6th of that month.
var monthBranches = [...]Branch{
	BranchChou, // January
	BranchYin,
	BranchMao,
	BranchChen,
	BranchSi,
	BranchWu,
	BranchWei,
	BranchShen,
	BranchYou,
	BranchXu,
	BranchHai,
	BranchZi, // December
}

// tigerMonthStems gives, per year stem, the stem of the Yin (Tiger) month.
var tigerMonthStems = [...]Stem{
	StemJia:  StemBing,
	StemYi:   StemWu,
	StemBing: StemGeng,
	StemDing: StemRen,
	StemWu:   StemJia,
	StemJi:   StemBing,
	StemGeng: StemWu,
	StemXin:  StemGeng,
	StemRen:  StemRen,
	StemGui:  StemJia,
}

// ratHourStems gives, per day stem, the stem of the Zi (Rat) hour.
var ratHourStems = [...]Stem{
	StemJia:  StemJia,
	StemYi:   StemBing,
	StemBing: StemWu,
	StemDing: StemGeng,
	StemWu:   StemRen,
	StemJi:   StemJia,
	StemGeng: StemBing,
	StemXin:  StemWu,
	StemRen:  StemGeng,
	StemGui:  StemRen,
}

var (
	_ = [1]struct{}{}[len(stemElements)-NumStems]
	_ = [1]struct{}{}[len(branchElements)-NumBranches]
	_ = [1]struct{}{}[len(hiddenStems)-NumBranches]
	_ = [1]struct{}{}[len(monthBranches)-12]
	_ = [1]struct{}{}[len(tigerMonthStems)-NumStems]
	_ = [1]struct{}{}[len(ratHourStems)-NumStems]
)
