package core

// headgroupLoss names a glycan (or sulfo) neutral loss and the element
// counts subtracted from the precursor formula. The numeric suffix in each
// name is the nominal lost mass.
type headgroupLoss struct {
	name string
	loss map[string]int
}

var hexLosses = []headgroupLoss{
	{"HG(-Hex,162)", map[string]int{"C": 6, "H": 10, "O": 5}},
	{"HG(-Hex,180)", map[string]int{"C": 6, "H": 12, "O": 6}},
	{"HG(-Hex,198)", map[string]int{"C": 6, "H": 14, "O": 7}},
}

var lacLosses = []headgroupLoss{
	{"HG(-Hex2,342)", map[string]int{"C": 12, "H": 22, "O": 11}},
	{"HG(-Hex2,360)", map[string]int{"C": 12, "H": 24, "O": 12}},
	{"HG(-Hex2,324)", map[string]int{"C": 12, "H": 20, "O": 10}},
}

var gb3Losses = []headgroupLoss{
	{"HG(-Hex3,504)", map[string]int{"C": 18, "H": 32, "O": 16}},
	{"HG(-Hex3,522)", map[string]int{"C": 18, "H": 34, "O": 17}},
	{"HG(-Hex3,540)", map[string]int{"C": 18, "H": 36, "O": 18}},
	{"HG(-Hex2,342)", map[string]int{"C": 12, "H": 22, "O": 11}},
	{"HG(-Hex,180)", map[string]int{"C": 6, "H": 12, "O": 6}},
}

var gb4Losses = []headgroupLoss{
	{"HG(-HexNAc,221)", map[string]int{"C": 8, "H": 15, "N": 1, "O": 6}},
	{"HG(-HexNAcHex,383)", map[string]int{"C": 14, "H": 25, "N": 1, "O": 11}},
	{"HG(-HexNAcHex2,545)", map[string]int{"C": 20, "H": 35, "N": 1, "O": 16}},
	{"HG(-HexNAcHex3,707)", map[string]int{"C": 26, "H": 45, "N": 1, "O": 21}},
	{"HG(-HexNAcHex3,725)", map[string]int{"C": 26, "H": 47, "N": 1, "O": 22}},
}

var ga1Losses = []headgroupLoss{
	{"HG(-HexNAc,221)", map[string]int{"C": 8, "H": 15, "N": 1, "O": 6}},
	{"HG(-HexNAcHex,383)", map[string]int{"C": 14, "H": 25, "N": 1, "O": 11}},
	{"HG(-HexNAc2Hex,586)", map[string]int{"C": 22, "H": 38, "N": 2, "O": 16}},
	{"HG(-HexNAc2Hex,604)", map[string]int{"C": 22, "H": 40, "N": 2, "O": 17}},
	{"HG(-HexNAc2Hex2,748)", map[string]int{"C": 28, "H": 48, "N": 2, "O": 21}},
	{"HG(-HexNAc2Hex2,766)", map[string]int{"C": 28, "H": 50, "N": 2, "O": 22}},
	{"HG(-HexNAc2Hex3,910)", map[string]int{"C": 34, "H": 58, "N": 2, "O": 26}},
	{"HG(-HexNAc2Hex3,928)", map[string]int{"C": 34, "H": 60, "N": 2, "O": 27}},
}

var ga2Losses = []headgroupLoss{
	{"HG(-HexNAc,221)", map[string]int{"C": 8, "H": 15, "N": 1, "O": 6}},
	{"HG(-HexNAcHex,383)", map[string]int{"C": 14, "H": 25, "N": 1, "O": 11}},
	{"HG(-HexNAcHex2,545)", map[string]int{"C": 20, "H": 35, "N": 1, "O": 16}},
	{"HG(-HexNAcHex2,563)", map[string]int{"C": 20, "H": 37, "N": 1, "O": 17}},
}

var lc3Losses = []headgroupLoss{
	{"HG(-HexNAc,221)", map[string]int{"C": 8, "H": 15, "N": 1, "O": 6}},
	{"HG(-HexNAcHex,383)", map[string]int{"C": 14, "H": 25, "N": 1, "O": 11}},
	{"HG(-HexNAcHex,401)", map[string]int{"C": 14, "H": 27, "N": 1, "O": 12}},
	{"HG(-HexNAcHex2,545)", map[string]int{"C": 20, "H": 35, "N": 1, "O": 16}},
	{"HG(-HexNAcHex2,563)", map[string]int{"C": 20, "H": 37, "N": 1, "O": 17}},
}

var lc4Losses = []headgroupLoss{
	{"HG(-HexNAc,221)", map[string]int{"C": 8, "H": 15, "N": 1, "O": 6}},
	{"HG(-HexNAc2,442)", map[string]int{"C": 16, "H": 28, "N": 2, "O": 11}},
	{"HG(-HexNAc2Hex,586)", map[string]int{"C": 22, "H": 38, "N": 2, "O": 16}},
	{"HG(-HexNAc2Hex,604)", map[string]int{"C": 22, "H": 40, "N": 2, "O": 17}},
	{"HG(-HexNAc2Hex2,748)", map[string]int{"C": 28, "H": 48, "N": 2, "O": 21}},
	{"HG(-HexNAc2Hex2,766)", map[string]int{"C": 28, "H": 50, "N": 2, "O": 22}},
	{"HG(-HexNAc2Hex2,784)", map[string]int{"C": 28, "H": 52, "N": 2, "O": 23}},
}

var sm4Losses = []headgroupLoss{
	{"HG(-SO4H2,98)", map[string]int{"H": 2, "S": 1, "O": 4}},
	{"HG(-SHex,260)", map[string]int{"C": 6, "H": 12, "S": 1, "O": 9}},
	{"HG(-SHex,278)", map[string]int{"C": 6, "H": 14, "S": 1, "O": 10}},
	{"HG(-SHex,242)", map[string]int{"C": 6, "H": 10, "S": 1, "O": 8}},
}

var shex2Losses = []headgroupLoss{
	{"HG(-SO3,80)", map[string]int{"S": 1, "O": 3}},
	{"HG(-HSO3,81)", map[string]int{"H": 1, "S": 1, "O": 3}},
	{"HG(-H2SO4,98)", map[string]int{"H": 2, "S": 1, "O": 4}},
	{"HG(-SHex,242)", map[string]int{"C": 6, "H": 10, "S": 1, "O": 8}},
	{"HG(-SHex,260)", map[string]int{"C": 6, "H": 12, "S": 1, "O": 9}},
	{"HG(-SHex,278)", map[string]int{"C": 6, "H": 14, "S": 1, "O": 10}},
	{"HG(-SHexHex,404)", map[string]int{"C": 12, "H": 20, "S": 1, "O": 13}},
	{"HG(-SHexHex,422)", map[string]int{"C": 12, "H": 22, "S": 1, "O": 14}},
	{"HG(-SHexHex,440)", map[string]int{"C": 12, "H": 24, "S": 1, "O": 15}},
}

var gm4Losses = []headgroupLoss{
	{"HG(-Neu5Ac,309)", map[string]int{"C": 11, "H": 19, "N": 1, "O": 9}},
	{"HG(-HexNeu5Ac,471)", map[string]int{"C": 17, "H": 29, "N": 1, "O": 14}},
}

var gm3Losses = []headgroupLoss{
	{"HG(-Neu5Ac,309)", map[string]int{"C": 11, "H": 19, "N": 1, "O": 9}},
	{"HG(-HexNeu5Ac,471)", map[string]int{"C": 17, "H": 29, "N": 1, "O": 14}},
	{"HG(-Hex2Neu5Ac,633)", map[string]int{"C": 23, "H": 39, "N": 1, "O": 19}},
}

var gm2Losses = []headgroupLoss{
	{"HG(-Neu5Ac,309)", map[string]int{"C": 11, "H": 19, "N": 1, "O": 9}},
	{"HG(-Neu5AcHexNAc,512)", map[string]int{"C": 19, "H": 32, "N": 2, "O": 14}},
	{"HG(-Neu5AcHexNAcHex,674)", map[string]int{"C": 25, "H": 42, "N": 2, "O": 19}},
	{"HG(-Neu5AcHexNAcHex2,836)", map[string]int{"C": 31, "H": 52, "N": 2, "O": 24}},
}

var gm1Losses = []headgroupLoss{
	{"HG(-Neu5Ac,309)", map[string]int{"C": 11, "H": 19, "N": 1, "O": 9}},
	{"HG(-Neu5AcHexNAcHex,674)", map[string]int{"C": 25, "H": 42, "N": 2, "O": 19}},
	{"HG(-Neu5AcHexNAcHex2,836)", map[string]int{"C": 31, "H": 52, "N": 2, "O": 24}},
	{"HG(-Neu5AcHexNAcHex3,998)", map[string]int{"C": 37, "H": 62, "N": 2, "O": 29}},
	{"HG(-Neu5AcHexNAcHex3,1016)", map[string]int{"C": 37, "H": 64, "N": 2, "O": 30}},
}

var gd3Losses = []headgroupLoss{
	{"HG(-Neu5Ac,309)", map[string]int{"C": 11, "H": 19, "N": 1, "O": 9}},
	{"HG(-Neu5Ac2,600)", map[string]int{"C": 22, "H": 36, "N": 2, "O": 17}},
	{"HG(-HexNeu5Ac2,780)", map[string]int{"C": 28, "H": 46, "N": 2, "O": 22}},
	{"HG(-Hex2Neu5Ac2,942)", map[string]int{"C": 34, "H": 56, "N": 2, "O": 27}},
}

var gd2Losses = []headgroupLoss{
	{"HG(-Neu5Ac,309)", map[string]int{"C": 11, "H": 19, "N": 1, "O": 9}},
	{"HG(-Neu5Ac2,600)", map[string]int{"C": 22, "H": 36, "N": 2, "O": 17}},
	{"HG(-HexNAc,221)", map[string]int{"C": 8, "H": 15, "N": 1, "O": 6}},
	{"HG(-HexNAc,203)", map[string]int{"C": 8, "H": 13, "N": 1, "O": 5}},
	{"HG(-Neu5AcHexNAc,512)", map[string]int{"C": 19, "H": 32, "N": 2, "O": 14}},
	{"HG(-Neu5Ac2HexNAc,803)", map[string]int{"C": 30, "H": 49, "N": 3, "O": 22}},
	{"HG(-Neu5Ac2HexNAcHex,965)", map[string]int{"C": 36, "H": 59, "N": 3, "O": 27}},
	{"HG(-HexNAcHex2Neu5Ac2,1127)", map[string]int{"C": 42, "H": 69, "N": 3, "O": 32}},
}

// gd1Losses serves both GD1a and GD1b; the isomers share the loss ladder.
var gd1Losses = []headgroupLoss{
	{"HG(-Neu5Ac,309)", map[string]int{"C": 11, "H": 19, "N": 1, "O": 9}},
	{"HG(-Neu5Ac2,618)", map[string]int{"C": 22, "H": 38, "N": 2, "O": 18}},
	{"HG(-Neu5Ac2,600)", map[string]int{"C": 22, "H": 36, "N": 2, "O": 17}},
	{"HG(-Neu5Ac2Hex,762)", map[string]int{"C": 28, "H": 46, "N": 2, "O": 22}},
	{"HG(-Neu5Ac2HexNAcHex,965)", map[string]int{"C": 36, "H": 59, "N": 3, "O": 27}},
	{"HG(-Neu5Ac2HexNAcHex2,1127)", map[string]int{"C": 42, "H": 69, "N": 3, "O": 32}},
	{"HG(-Neu5Ac2HexNAcHex3,1289)", map[string]int{"C": 48, "H": 79, "N": 3, "O": 37}},
}

var gt1aLosses = []headgroupLoss{
	{"HG(-Neu5Ac,309)", map[string]int{"C": 11, "H": 19, "N": 1, "O": 9}},
	{"HG(-Neu5Ac2,600)", map[string]int{"C": 22, "H": 36, "N": 2, "O": 17}},
	{"HG(-Neu5Ac2,618)", map[string]int{"C": 22, "H": 38, "N": 2, "O": 18}},
	{"HG(-Neu5Ac3,909)", map[string]int{"C": 33, "H": 55, "N": 3, "O": 26}},
	{"HG(-Neu5Ac3,891)", map[string]int{"C": 33, "H": 53, "N": 3, "O": 25}},
	{"HG(-Neu5Ac2HexNAcHex,965)", map[string]int{"C": 36, "H": 59, "N": 3, "O": 27}},
	{"HG(-Neu5Ac3HexNAcHex,1274)", map[string]int{"C": 47, "H": 78, "N": 4, "O": 36}},
	{"HG(-Neu5Ac3HexNAcHex,1256)", map[string]int{"C": 47, "H": 76, "N": 4, "O": 35}},
}

var gt1bLosses = []headgroupLoss{
	{"HG(-Neu5Ac,309)", map[string]int{"C": 11, "H": 19, "N": 1, "O": 9}},
	{"HG(-Neu5Ac2,600)", map[string]int{"C": 22, "H": 36, "N": 2, "O": 17}},
	{"HG(-Neu5Ac2,618)", map[string]int{"C": 22, "H": 38, "N": 2, "O": 18}},
	{"HG(-Neu5Ac3,909)", map[string]int{"C": 33, "H": 55, "N": 3, "O": 26}},
	{"HG(-Neu5Ac3,891)", map[string]int{"C": 33, "H": 53, "N": 3, "O": 25}},
	{"HG(-Neu5AcHexNAcHex,674)", map[string]int{"C": 25, "H": 42, "N": 2, "O": 19}},
	{"HG(-Neu5Ac3HexNAcHex,1274)", map[string]int{"C": 47, "H": 78, "N": 4, "O": 36}},
	{"HG(-Neu5Ac3HexNAcHex,1256)", map[string]int{"C": 47, "H": 76, "N": 4, "O": 35}},
}

var gt1cLosses = []headgroupLoss{
	{"HG(-Neu5Ac,309)", map[string]int{"C": 11, "H": 19, "N": 1, "O": 9}},
	{"HG(-Neu5Ac3,891)", map[string]int{"C": 33, "H": 53, "N": 3, "O": 25}},
	{"HG(-Hex,180)", map[string]int{"C": 6, "H": 12, "O": 6}},
	{"HG(-HexHexNAc,383)", map[string]int{"C": 14, "H": 25, "N": 1, "O": 11}},
	{"HG(-HexNeu5Ac3,1071)", map[string]int{"C": 39, "H": 65, "N": 3, "O": 31}},
	{"HG(-Neu5Ac3HexNAcHex,1274)", map[string]int{"C": 47, "H": 78, "N": 4, "O": 36}},
}

var gt2Losses = []headgroupLoss{
	{"HG(-Neu5Ac,309)", map[string]int{"C": 11, "H": 19, "N": 1, "O": 9}},
	{"HG(-Neu5Ac2,600)", map[string]int{"C": 22, "H": 36, "N": 2, "O": 17}},
	{"HG(-Neu5Ac3,891)", map[string]int{"C": 33, "H": 53, "N": 3, "O": 25}},
	{"HG(-HexNAc,221)", map[string]int{"C": 8, "H": 15, "N": 1, "O": 6}},
	{"HG(-HexNAcNeu5Ac3,1094)", map[string]int{"C": 41, "H": 66, "N": 4, "O": 30}},
	{"HG(-Neu5Ac3HexNAc,1112)", map[string]int{"C": 41, "H": 68, "N": 4, "O": 31}},
}

var gt3Losses = []headgroupLoss{
	{"HG(-Neu5Ac,309)", map[string]int{"C": 11, "H": 19, "N": 1, "O": 9}},
	{"HG(-Neu5Ac2,600)", map[string]int{"C": 22, "H": 36, "N": 2, "O": 17}},
	{"HG(-Neu5Ac3,891)", map[string]int{"C": 33, "H": 53, "N": 3, "O": 25}},
	{"HG(-Neu5Ac3,909)", map[string]int{"C": 33, "H": 55, "N": 3, "O": 26}},
	{"HG(-Neu5Ac3Hex,1053)", map[string]int{"C": 39, "H": 63, "N": 3, "O": 30}},
	{"HG(-Neu5Ac3Hex,1215)", map[string]int{"C": 45, "H": 73, "N": 3, "O": 35}},
}

var gq1Losses = []headgroupLoss{
	{"HG(-Neu5Ac,309)", map[string]int{"C": 11, "H": 19, "N": 1, "O": 9}},
	{"HG(-Neu5Ac2,600)", map[string]int{"C": 22, "H": 36, "N": 2, "O": 17}},
	{"HG(-Neu5Ac3,891)", map[string]int{"C": 33, "H": 53, "N": 3, "O": 25}},
	{"HG(-Neu5Ac4,1182)", map[string]int{"C": 44, "H": 70, "N": 4, "O": 33}},
	{"HG(-Neu5Ac4HexNAcHex,1547)", map[string]int{"C": 58, "H": 93, "N": 5, "O": 43}},
	{"HG(-Neu5Ac4HexNAcHex,1727)", map[string]int{"C": 64, "H": 105, "N": 5, "O": 49}},
	{"HG(-Neu5Ac4HexNAcHex,1709)", map[string]int{"C": 64, "H": 103, "N": 5, "O": 48}},
	{"HG(-Neu5Ac4HexNAcHex,1871)", map[string]int{"C": 70, "H": 113, "N": 5, "O": 53}},
	{"HG(-Neu5Ac4HexNAcHex,1887)", map[string]int{"C": 70, "H": 113, "N": 5, "O": 54}},
}

var gp1Losses = []headgroupLoss{
	{"HG(-Neu5Ac,309)", map[string]int{"C": 11, "H": 19, "N": 1, "O": 9}},
	{"HG(-Neu5Ac2,600)", map[string]int{"C": 22, "H": 36, "N": 2, "O": 17}},
	{"HG(-Neu5Ac3,891)", map[string]int{"C": 33, "H": 53, "N": 3, "O": 25}},
	{"HG(-Neu5Ac4,1182)", map[string]int{"C": 44, "H": 70, "N": 4, "O": 33}},
	{"HG(-Neu5Ac4,1200)", map[string]int{"C": 44, "H": 72, "N": 4, "O": 34}},
	{"HG(-Neu5Ac5,1473)", map[string]int{"C": 55, "H": 87, "N": 5, "O": 41}},
	{"HG(-Neu5Ac5,1491)", map[string]int{"C": 55, "H": 89, "N": 5, "O": 42}},
	{"HG(-Neu5Ac4HexNAcHex,1547)", map[string]int{"C": 58, "H": 93, "N": 5, "O": 43}},
	{"HG(-Neu5Ac5HexNAcHex,1838)", map[string]int{"C": 69, "H": 110, "N": 6, "O": 51}},
}

var nlc10Losses = []headgroupLoss{
	{"HG(-HexNAc,221)", map[string]int{"C": 8, "H": 15, "N": 1, "O": 6}},
	{"HG(-HexNAcHex,383)", map[string]int{"C": 14, "H": 25, "N": 1, "O": 11}},
	{"HG(-HexNAc2Hex,586)", map[string]int{"C": 22, "H": 38, "N": 2, "O": 16}},
	{"HG(-HexNAc4Hex4,1478)", map[string]int{"C": 56, "H": 94, "N": 4, "O": 44}},
}

var nlc8Losses = []headgroupLoss{
	{"HG(-Hex,180)", map[string]int{"C": 6, "H": 12, "O": 6}},
	{"HG(-HexHexNAc,365)", map[string]int{"C": 14, "H": 23, "N": 1, "O": 10}},
	{"HG(-HexHexNAc,383)", map[string]int{"C": 14, "H": 25, "N": 1, "O": 11}},
	{"HG(-Hex3HexNAc3,1113)", map[string]int{"C": 42, "H": 71, "N": 3, "O": 31}},
	{"HG(-Hex3HexNAc3,1257)", map[string]int{"C": 42, "H": 71, "N": 3, "O": 32}},
}

var nlc6Losses = []headgroupLoss{
	{"HG(-Hex,180)", map[string]int{"C": 6, "H": 12, "O": 6}},
	{"HG(-HexHexNAc,365)", map[string]int{"C": 14, "H": 23, "N": 1, "O": 10}},
	{"HG(-HexHexNAc,383)", map[string]int{"C": 14, "H": 25, "N": 1, "O": 11}},
	{"HG(-Hex2HexNAc2,748)", map[string]int{"C": 28, "H": 48, "N": 2, "O": 21}},
	{"HG(-Hex2HexNAc2,766)", map[string]int{"C": 28, "H": 50, "N": 2, "O": 22}},
	{"HG(-Hex3HexNAc2,910)", map[string]int{"C": 34, "H": 58, "N": 2, "O": 26}},
	{"HG(-Hex3HexNAc2,928)", map[string]int{"C": 34, "H": 60, "N": 2, "O": 27}},
}

// headgroupLossTables dispatches lipid class to its ordered loss ladder.
var headgroupLossTables = map[string][]headgroupLoss{
	"Hex":   hexLosses,
	"Lac":   lacLosses,
	"Gb3":   gb3Losses,
	"Gb4":   gb4Losses,
	"GA1":   ga1Losses,
	"GA2":   ga2Losses,
	"LC3":   lc3Losses,
	"LC4":   lc4Losses,
	"SM4":   sm4Losses,
	"SHex2": shex2Losses,
	"GM4":   gm4Losses,
	"GM3":   gm3Losses,
	"GM2":   gm2Losses,
	"GM1":   gm1Losses,
	"GD3":   gd3Losses,
	"GD2":   gd2Losses,
	"GD1a":  gd1Losses,
	"GD1b":  gd1Losses,
	"GT1a":  gt1aLosses,
	"GT1b":  gt1bLosses,
	"GT1c":  gt1cLosses,
	"GT2":   gt2Losses,
	"GT3":   gt3Losses,
	"GQ1":   gq1Losses,
	"GP1":   gp1Losses,
	"nLc10": nlc10Losses,
	"nLc8":  nlc8Losses,
	"nLc6":  nlc6Losses,
}

// applyHeadgroupLosses subtracts each loss from the precursor formula and
// returns the resulting neutral fragments in table order.
func applyHeadgroupLosses(precursor MolecularFormula, losses []headgroupLoss) ([]Fragment, error) {
	fragments := make([]Fragment, 0, len(losses))
	for _, entry := range losses {
		residual := precursor.Subtract(entry.loss)
		mass, err := residual.Mass()
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, Fragment{
			Name:    entry.name,
			Formula: residual.String(),
			Mass:    mass,
		})
	}
	return fragments, nil
}

// HeadgroupLossFragments returns the neutral headgroup-loss fragments for a
// lipid class. Classes without a loss table yield nil.
func HeadgroupLossFragments(lipidClass string, precursor MolecularFormula) ([]Fragment, error) {
	losses, ok := headgroupLossTables[lipidClass]
	if !ok {
		return nil, nil
	}
	return applyHeadgroupLosses(precursor, losses)
}
