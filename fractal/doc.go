// Package fractal grows an image by repeated block substitution.
//
// Each Step cuts the current image into 2×2 blocks when its side is even,
// 3×3 blocks otherwise, replaces every block with the output of the matching
// rule from a rulebook.Book (matched in any rotation or mirror image), and
// stitches the outputs back together in the same row-major order:
//
//	.#.        #..#        ##.##.
//	..#   →    ....   →    #..#..
//	###        ....        ......
//	           #..#        ##.##.
//	                       #..#..
//	                       ......
//
// Usage:
//
//	book, err := rulebook.Parse(text)
//	f, err := fractal.New(book, block.MustParse(fractal.DefaultSeed))
//	err = f.Run(5)
//	fmt.Println(f.Ones())
//
// A Book is only read, so several engines may share one. A Fractal itself is
// not safe for concurrent use.
package fractal
