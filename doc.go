// Package molview draws 2D molecule diagrams with gg.
//
// # Overview
//
// molview turns a molecule graph (package model) into vector primitives on a
// Canvas. The BondRenderer emits bond lines, stereo wedges and hatches, and
// translucent highlight halos. A Scene collects the primitives and can be
// rasterised onto a gg.Context or exported through gg's recording backends.
//
// # Quick Start
//
//	mol, _ := model.ReadMolecule(f)
//	lo, hi := mol.Bounds()
//
//	scene := molview.NewScene()
//	scene.Background = gg.White
//	br, _ := molview.NewBondRenderer(scene,
//	    molview.WithTransform(molview.FitTransform(lo, hi, 400, 300, 20, 40)))
//	br.RenderMolecule(mol, nil)
//
//	dc := gg.NewContext(400, 300)
//	scene.Draw(dc)
//	dc.SavePNG("molecule.png")
//
// # Coordinate Systems
//
// Atoms live in model space, where y points up and one unit is roughly one
// ångström. The renderer's transform maps model space to screen space
// (y down, pixels). Lengths in the configuration that are expressed in model
// units are multiplied by the transform's x scale.
//
// # Highlights
//
// HighlightOn returns the ElementArray holding the halo; pass it to
// HighlightOff to remove the halo again without touching the bond itself.
package molview

// Version is the current version of the library.
const Version = "0.1.0"
