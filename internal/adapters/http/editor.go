package http

import "html/template"

// editorPage renders the editor shell. The module name lands in the
// title and the nodes.js URL, so it goes through html/template rather
// than plain string formatting.
var editorPage = template.Must(template.New("editor").Parse(editorHTML))

const editorHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>{{.Module}} - {{.Title}}</title>
    <link rel="stylesheet" href="https://unpkg.com/litegraph.js@0.7.18/css/litegraph.css" />
    <style>
        html, body { margin: 0; height: 100%; overflow: hidden; }
        #editor { width: 100%; height: 100%; }
    </style>
</head>
<body>
<canvas id="editor"></canvas>
<script src="https://unpkg.com/litegraph.js@0.7.18/build/litegraph.js"></script>
<script src="/node-edit/{{.Module}}/nodes.js"></script>
<script>
    const graph = new LGraph();
    const canvas = new LGraphCanvas("#editor", graph);
    const resize = () => canvas.resize(window.innerWidth, window.innerHeight);
    window.addEventListener("resize", resize);
    resize();
    graph.start();
</script>
</body>
</html>
`
