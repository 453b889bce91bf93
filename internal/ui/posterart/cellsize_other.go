//go:build !unix

package posterart

func getCellSize() (cellW, cellH int) {
	return 8, 16
}
