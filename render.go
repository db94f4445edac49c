package main

import (
	"bytes"
	"html/template"
)

var resultsTableTmpl = template.Must(template.New("results").Funcs(template.FuncMap{
	"serial": func(i int) int { return i + 1 },
}).Parse(`<html>
<head>
    <title>Student Results</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            background-color: #f2f2f2;
            margin: 0;
            padding: 0;
        }

        .container {
            max-width: 800px;
            margin: 20px auto;
            padding: 20px;
            background-color: #fff;
            border-radius: 8px;
            box-shadow: 0 0 10px rgba(0, 0, 0, 0.1);
        }

        table {
            width: 100%;
            border-collapse: collapse;
        }

        th, td {
            padding: 12px 15px;
            text-align: left;
            border-bottom: 1px solid #ddd;
        }

        th {
            background-color: #4CAF50;
            color: white;
            text-transform: uppercase;
        }

        tr:nth-child(even) {
            background-color: #f2f2f2;
        }

        tr:hover {
            background-color: #ddd;
        }
    </style>
</head>
<body>
    <div class="container">
        <table>
            <tr>
                <th>S.No</th>
                <th>Subject Code</th>
                <th>Subject Name</th>
                <th>Type</th>
                <th>Credits</th>
                <th>Final Grade</th>
            </tr>
{{- range $i, $r := .}}
            <tr><td>{{serial $i}}</td><td>{{$r.SubjectCode}}</td><td>{{$r.SubjectName}}</td><td>{{$r.SubjectType}}</td><td>{{$r.SubjectCredits}}</td><td>{{$r.Grade}}</td></tr>
{{- end}}
        </table>
    </div>
</body>
</html>
`))

// RenderResultsTable gera a página HTML da lista de disciplinas, uma linha por disciplina.
func RenderResultsTable(rows []SubjectResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := resultsTableTmpl.Execute(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
