package render

const pageTpl = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Competitor Analysis - {{.CompanyName}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; max-width: 1200px; margin: 0 auto; padding: 20px; background-color: #f5f5f5; }
        .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 40px 30px; border-radius: 10px; margin-bottom: 30px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
        .header h1 { font-size: 2.5em; margin-bottom: 10px; }
        .header h2 { font-size: 1.8em; margin: 15px 0; border: none; color: white; }
        .header a { color: white; text-decoration: underline; }
        .section { background: white; padding: 30px; margin-bottom: 20px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h2 { color: #667eea; border-bottom: 3px solid #667eea; padding-bottom: 10px; margin-bottom: 20px; }
        h3 { color: #764ba2; margin: 20px 0 10px 0; }
        .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(280px, 1fr)); gap: 20px; margin: 20px 0; }
        .card { background: #f8f9fa; padding: 20px; border-radius: 8px; border-left: 4px solid #667eea; }
        .tag { display: inline-block; background: #667eea; color: white; padding: 6px 12px; border-radius: 20px; margin: 5px; font-size: 0.9em; }
        .list-item { background: #f8f9fa; padding: 15px; margin: 10px 0; border-radius: 5px; border-left: 4px solid #28a745; }
        .weakness { border-left-color: #dc3545; }
        .news-item { background: #fff9e6; border-left: 4px solid #ffc107; padding: 20px; margin: 15px 0; border-radius: 5px; }
        .news-item h3 { margin-top: 0; }
        .meta { opacity: 0.9; font-size: 0.95em; }
        .no-data { color: #6c757d; font-style: italic; }
        .social { list-style: none; padding: 0; }
        .social li { margin: 10px 0; }
    </style>
</head>
<body>
    <div class="header">
        <h1>🔍 Competitor Analysis Report</h1>
        <h2>{{.CompanyName}}</h2>
        <div class="meta">
            <p><strong>Website:</strong> <a href="{{.WebsiteURL}}" target="_blank">{{.WebsiteText}}</a></p>
            <p><strong>Analysis Date:</strong> {{.AnalysisDate}}</p>
        </div>
    </div>

    <div class="section">
        <h2>📋 Company Overview</h2>
        <p><strong>Description:</strong> {{.Description}}</p>
        <div class="grid">
            <div class="card">
                <h3>🏢 Founded</h3>
                <p>{{.FoundedYear}}</p>
            </div>
            <div class="card">
                <h3>📍 Headquarters</h3>
                <p>{{.Headquarters}}</p>
            </div>
            <div class="card">
                <h3>👥 Company Size</h3>
                <p>{{.Size}}</p>
            </div>
        </div>
    </div>

    <div class="section">
        <h2>🛍️ Products &amp; Services</h2>
        {{- if .Products}}
        <div class="grid">
            {{- range .Products}}
            <div class="card product">
                <h3>{{.Name}}</h3>
                <p><strong>Category:</strong> {{.Category}}</p>
                <p>{{.Description}}</p>
            </div>
            {{- end}}
        </div>
        {{- else}}
        <p class="no-data">No product information available.</p>
        {{- end}}
    </div>

    <div class="section">
        <h2>📊 Market Position</h2>
        <p><strong>Target Market:</strong> {{.TargetMarket}}</p>
        <p><strong>Market Share:</strong> {{.MarketShare}}</p>
        <h3>Key Competitors</h3>
        <div>
            {{- range .Competitors}}
            <span class="tag competitor">{{.}}</span>
            {{- else}}
            <p class="no-data">No competitor information available.</p>
            {{- end}}
        </div>
    </div>

    <div class="section">
        <h2>⚡ SWOT Analysis</h2>
        <div class="grid">
            <div>
                <h3>💪 Strengths</h3>
                {{- range .Strengths}}
                <div class="list-item strength">{{.}}</div>
                {{- else}}
                <p class="no-data">No strengths information available.</p>
                {{- end}}
            </div>
            <div>
                <h3>⚠️ Weaknesses</h3>
                {{- range .Weaknesses}}
                <div class="list-item weakness">{{.}}</div>
                {{- else}}
                <p class="no-data">No weaknesses information available.</p>
                {{- end}}
            </div>
        </div>
    </div>

    <div class="section">
        <h2>📰 Recent News &amp; Updates</h2>
        {{- range .News}}
        <div class="news-item">
            <h3>{{.Title}}</h3>
            <p class="meta"><em>{{.Date}} • {{.Source}}</em></p>
            <p>{{.Summary}}</p>
        </div>
        {{- else}}
        <p class="no-data">No recent news available.</p>
        {{- end}}
    </div>

    <div class="section">
        <h2>💻 Technology &amp; Pricing</h2>
        <p><strong>Pricing Model:</strong> {{.PricingModel}}</p>
        <h3>Technology Stack</h3>
        <div>
            {{- range .TechStack}}
            <span class="tag tech">{{.}}</span>
            {{- else}}
            <p class="no-data">No technology information available.</p>
            {{- end}}
        </div>
    </div>

    <div class="section">
        <h2>🌐 Social Media Presence</h2>
        {{- if .Social}}
        <ul class="social">
            {{- range .Social}}
            <li><strong>{{.Icon}} {{.Label}}:</strong> <a href="{{.URL}}" target="_blank">{{.URL}}</a></li>
            {{- end}}
        </ul>
        {{- else}}
        <p class="no-data">No social media information available.</p>
        {{- end}}
    </div>
</body>
</html>
`

const errorTpl = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Analysis Failed - {{.Identifier}}</title>
</head>
<body>
    <h1>Analysis Failed</h1>
    <p><strong>Company:</strong> {{.Identifier}}</p>
    <p><strong>Error:</strong> {{.Message}}</p>
</body>
</html>
`
