package workspace

import "github.com/studiowebux/minicoder/internal/types"

const seedHTML = `<!DOCTYPE html>
<html>
<head>
</head>
<body>
  <section class="content">
    <h1>mini<span>coder</span></h1>
    <p>the minimalist code environment.</p>
  </section>
</body>
</html>`

const seedCSS = `:root {
  --bg-base: #121212;
  --text-primary: #e0e0e0;
  --text-muted: #a0a0a0;
  --accent: #3b82f6;
}

body {
  margin: 0;
  background: var(--bg-base);
  color: var(--text-primary);
  font-family: 'Segoe UI', sans-serif;
  display: flex;
  height: 100vh;
  overflow: hidden;
}

.content {
  flex: 1;
  display: flex;
  flex-direction: column;
  align-items: center;
  justify-content: center;
  text-align: center;
}

h1 {
  font-size: 2.5rem;
  font-weight: 300;
  margin: 0;
}

span {
  color: var(--accent);
}

p {
  color: var(--text-muted);
  margin: 10px 0 25px;
  font-size: 0.9rem;
}`

const seedJS = `console.log("MiniCoder initialized!");`

// seedFiles returns the starter project every fresh workspace begins with.
func seedFiles() []*types.VirtualFile {
	return []*types.VirtualFile{
		{Name: types.EntryHTML, Language: types.LangHTML, Content: seedHTML},
		{Name: types.EntryCSS, Language: types.LangCSS, Content: seedCSS},
		{Name: types.EntryJS, Language: types.LangJavaScript, Content: seedJS},
	}
}
