package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zircuit-labs/zkr-go-delegates/runner"
	"github.com/zircuit-labs/zkr-go-delegates/showcase"
)

// even, odd, greater than 50 and prime over 1..100, each group followed by a blank line
const expected = "" +
	"2\n4\n6\n8\n10\n12\n14\n16\n18\n20\n" +
	"22\n24\n26\n28\n30\n32\n34\n36\n38\n40\n" +
	"42\n44\n46\n48\n50\n52\n54\n56\n58\n60\n" +
	"62\n64\n66\n68\n70\n72\n74\n76\n78\n80\n" +
	"82\n84\n86\n88\n90\n92\n94\n96\n98\n100\n" +
	"\n" +
	"1\n3\n5\n7\n9\n11\n13\n15\n17\n19\n" +
	"21\n23\n25\n27\n29\n31\n33\n35\n37\n39\n" +
	"41\n43\n45\n47\n49\n51\n53\n55\n57\n59\n" +
	"61\n63\n65\n67\n69\n71\n73\n75\n77\n79\n" +
	"81\n83\n85\n87\n89\n91\n93\n95\n97\n99\n" +
	"\n" +
	"51\n52\n53\n54\n55\n56\n57\n58\n59\n60\n" +
	"61\n62\n63\n64\n65\n66\n67\n68\n69\n70\n" +
	"71\n72\n73\n74\n75\n76\n77\n78\n79\n80\n" +
	"81\n82\n83\n84\n85\n86\n87\n88\n89\n90\n" +
	"91\n92\n93\n94\n95\n96\n97\n98\n99\n100\n" +
	"\n" +
	"2\n3\n5\n7\n11\n13\n17\n19\n23\n29\n" +
	"31\n37\n41\n43\n47\n53\n59\n61\n67\n71\n" +
	"73\n79\n83\n89\n97\n" +
	"\n"

func TestFilterDemo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runner.Execute("filterdemo", settings, nil, &stdout, &stderr, showcase.FilterProgram)
	require.Equal(t, 0, code, stderr.String())

	require.Len(t, expected, 518)
	assert.Equal(t, expected, stdout.String())
}
