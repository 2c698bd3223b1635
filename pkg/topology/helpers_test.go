package topology

import "github.com/freestylewhl/pynoddy/pkg/source"

// testModelSource returns the export files of a small three-region model:
// lithology 1 "Granite" and lithology 2 "Sandy Shale"; regions A=1_001a
// (volume 100), B=2_001b (volume 60), C=2_051a (volume 5); contacts A-B
// (stratigraphic, area 10) and B-C (intrusive, area 4).
func testModelSource() source.MapSource {
	g20 := "" +
		"VERSION 7.11 2\n" +
		"EVENT 1 STRATIGRAPHY\n" +
		"EVENT 2 PLUG\n" +
		"NUM EVENTS = 2\n" +
		"ROCK DEFS\n" +
		"1 0 Granite 255 0 0\n" +
		"2 0 Sandy Shale 0 128 255\n"

	vs := "" +
		"GOCAD VSet 1\n" +
		"HEADER {\n" +
		"name: test\n" +
		"}\n" +
		"PVRTX 1 100.0 200.0 300.0 1 001a 100\n" +
		"PVRTX 2 150.0 250.0 350.0 2 001b 60\n" +
		"PVRTX 3 1.0 2.0 3.0 2 051a 5\n"

	g23 := "" +
		"1_001a\t2_001b\t10\n" +
		"2_001b\t2_051a\t4\n"

	return source.MapSource{
		"test.g20":  []byte(g20),
		"test_v.vs": []byte(vs),
		"test.g23":  []byte(g23),
	}
}
